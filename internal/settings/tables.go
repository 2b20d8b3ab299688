package settings

// GlobalTable lists the string constants of Settings.Global.
var GlobalTable = Table{
	Namespace: NamespaceGlobal,
	Entries: []Entry{
		{"ADB_ENABLED", "adb_enabled"},
		{"AIRPLANE_MODE_ON", "airplane_mode_on"},
		{"AIRPLANE_MODE_RADIOS", "airplane_mode_radios"},
		{"ALWAYS_FINISH_ACTIVITIES", "always_finish_activities"},
		{"ANIMATOR_DURATION_SCALE", "animator_duration_scale"},
		{"APPLY_RAMPING_RINGER", "apply_ramping_ringer"},
		{"AUTO_TIME", "auto_time"},
		{"AUTO_TIME_ZONE", "auto_time_zone"},
		{"BLUETOOTH_ON", "bluetooth_on"},
		{"BOOT_COUNT", "boot_count"},
		{"CONTACT_METADATA_SYNC_ENABLED", "contact_metadata_sync_enabled"},
		{"DATA_ROAMING", "data_roaming"},
		{"DEBUG_APP", "debug_app"},
		{"DEVELOPMENT_SETTINGS_ENABLED", "development_settings_enabled"},
		{"DEVICE_NAME", "device_name"},
		{"DEVICE_PROVISIONED", "device_provisioned"},
		{"HTTP_PROXY", "http_proxy"},
		{"MODE_RINGER", "mode_ringer"},
		{"NETWORK_PREFERENCE", "network_preference"},
		{"RADIO_BLUETOOTH", "bluetooth"},
		{"RADIO_CELL", "cell"},
		{"RADIO_NFC", "nfc"},
		{"RADIO_WIFI", "wifi"},
		{"SECURE_FRP_MODE", "secure_frp_mode"},
		{"STAY_ON_WHILE_PLUGGED_IN", "stay_on_while_plugged_in"},
		{"TRANSITION_ANIMATION_SCALE", "transition_animation_scale"},
		{"USB_MASS_STORAGE_ENABLED", "usb_mass_storage_enabled"},
		{"USE_GOOGLE_MAIL", "use_google_mail"},
		{"WAIT_FOR_DEBUGGER", "wait_for_debugger"},
		{"WIFI_DEVICE_OWNER_CONFIGS_LOCKDOWN", "wifi_device_owner_configs_lockdown"},
		{"WIFI_MAX_DHCP_RETRY_COUNT", "wifi_max_dhcp_retry_count"},
		{"WIFI_MOBILE_DATA_TRANSITION_WAKELOCK_TIMEOUT_MS", "wifi_mobile_data_transition_wakelock_timeout_ms"},
		{"WIFI_NETWORKS_AVAILABLE_NOTIFICATION_ON", "wifi_networks_available_notification_on"},
		{"WIFI_NETWORKS_AVAILABLE_REPEAT_DELAY", "wifi_networks_available_repeat_delay"},
		{"WIFI_NUM_OPEN_NETWORKS_KEPT", "wifi_num_open_networks_kept"},
		{"WIFI_ON", "wifi_on"},
		{"WIFI_SLEEP_POLICY", "wifi_sleep_policy"},
		{"WIFI_WATCHDOG_ON", "wifi_watchdog_on"},
		{"WINDOW_ANIMATION_SCALE", "window_animation_scale"},
	},
}

// SystemTable lists the string constants of Settings.System. Many of the
// early device-wide constants are still declared here (deprecated); the
// catalog resolves those to Global.
var SystemTable = Table{
	Namespace: NamespaceSystem,
	Entries: []Entry{
		{"ACCELEROMETER_ROTATION", "accelerometer_rotation"},
		{"ADB_ENABLED", "adb_enabled"},
		{"AIRPLANE_MODE_ON", "airplane_mode_on"},
		{"AIRPLANE_MODE_RADIOS", "airplane_mode_radios"},
		{"ALARM_ALERT", "alarm_alert"},
		{"ALWAYS_FINISH_ACTIVITIES", "always_finish_activities"},
		{"ANIMATOR_DURATION_SCALE", "animator_duration_scale"},
		{"AUTO_TIME", "auto_time"},
		{"AUTO_TIME_ZONE", "auto_time_zone"},
		{"BLUETOOTH_DISCOVERABILITY", "bluetooth_discoverability"},
		{"BLUETOOTH_DISCOVERABILITY_TIMEOUT", "bluetooth_discoverability_timeout"},
		{"BLUETOOTH_ON", "bluetooth_on"},
		{"DATA_ROAMING", "data_roaming"},
		{"DATE_FORMAT", "date_format"},
		{"DEBUG_APP", "debug_app"},
		{"DEVICE_PROVISIONED", "device_provisioned"},
		{"DIM_SCREEN", "dim_screen"},
		{"DTMF_TONE_TYPE_WHEN_DIALING", "dtmf_tone_type"},
		{"DTMF_TONE_WHEN_DIALING", "dtmf_tone"},
		{"END_BUTTON_BEHAVIOR", "end_button_behavior"},
		{"FONT_SCALE", "font_scale"},
		{"HAPTIC_FEEDBACK_ENABLED", "haptic_feedback_enabled"},
		{"HTTP_PROXY", "http_proxy"},
		{"LOCK_TO_APP_ENABLED", "lock_to_app_enabled"},
		{"MODE_RINGER_STREAMS_AFFECTED", "mode_ringer_streams_affected"},
		{"MUTE_STREAMS_AFFECTED", "mute_streams_affected"},
		{"NEXT_ALARM_FORMATTED", "next_alarm_formatted"},
		{"NOTIFICATION_SOUND", "notification_sound"},
		{"RINGTONE", "ringtone"},
		{"SCREEN_BRIGHTNESS", "screen_brightness"},
		{"SCREEN_BRIGHTNESS_MODE", "screen_brightness_mode"},
		{"SCREEN_OFF_TIMEOUT", "screen_off_timeout"},
		{"SETUP_WIZARD_HAS_RUN", "setup_wizard_has_run"},
		{"SHOW_PROCESSES", "show_processes"},
		{"SOUND_EFFECTS_ENABLED", "sound_effects_enabled"},
		{"STAY_ON_WHILE_PLUGGED_IN", "stay_on_while_plugged_in"},
		{"SYS_PROP_SETTING_VERSION", "sys.settings_system_version"},
		{"TEXT_AUTO_CAPS", "auto_caps"},
		{"TEXT_AUTO_PUNCTUATE", "auto_punctuate"},
		{"TEXT_AUTO_REPLACE", "auto_replace"},
		{"TEXT_SHOW_PASSWORD", "show_password"},
		{"TIME_12_24", "time_12_24"},
		{"TRANSITION_ANIMATION_SCALE", "transition_animation_scale"},
		{"USB_MASS_STORAGE_ENABLED", "usb_mass_storage_enabled"},
		{"USER_ROTATION", "user_rotation"},
		{"VIBRATE_ON", "vibrate_on"},
		{"VIBRATE_WHEN_RINGING", "vibrate_when_ringing"},
		{"VOLUME_ALARM", "volume_alarm"},
		{"VOLUME_MUSIC", "volume_music"},
		{"VOLUME_NOTIFICATION", "volume_notification"},
		{"VOLUME_RING", "volume_ring"},
		{"VOLUME_SYSTEM", "volume_system"},
		{"VOLUME_VOICE", "volume_voice"},
		{"WAIT_FOR_DEBUGGER", "wait_for_debugger"},
		{"WALLPAPER_ACTIVITY", "wallpaper_activity"},
		{"WIFI_ON", "wifi_on"},
		{"WIFI_SLEEP_POLICY", "wifi_sleep_policy"},
		{"WINDOW_ANIMATION_SCALE", "window_animation_scale"},
	},
}

// DefaultTables returns the built-in tables in preference order.
func DefaultTables() []Table {
	return []Table{GlobalTable, SystemTable}
}
