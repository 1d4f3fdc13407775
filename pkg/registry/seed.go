package registry

// Seed data for the demo household. The panel boots with these and resets to
// them on restart; there is no durable storage behind the registry.

func seedDevices() []Device {
	return []Device{
		{
			ID:             "1",
			Name:           "Living Room Lights",
			Type:           TypeLight,
			Room:           "Living Room",
			Status:         StatusOn,
			Value:          "80%",
			ConnectionType: ConnZigbee,
			SerialNumber:   "LGT-2290-X1",
			IPAddress:      "N/A (Zigbee)",
			ModelNumber:    "HUE-A19-W",
		},
		{
			ID:             "2",
			Name:           "Kitchen Plug",
			Type:           TypePlug,
			Room:           "Kitchen",
			Status:         StatusOff,
			ConnectionType: ConnWiFi,
			SerialNumber:   "PLG-8821-V2",
			IPAddress:      "192.168.1.105",
			ModelNumber:    "TP-LINK-HS103",
		},
		{
			ID:             "3",
			Name:           "Thermostat",
			Type:           TypeThermostat,
			Room:           "Hallway",
			Status:         StatusOn,
			Value:          "22°C",
			ConnectionType: ConnWiFi,
			SerialNumber:   "THM-NEST-G3",
			IPAddress:      "192.168.1.110",
			ModelNumber:    "NEST-LEARN-V3",
		},
		{
			ID:             "4",
			Name:           "Front Door Lock",
			Type:           TypeLock,
			Room:           "Entrance",
			Status:         StatusOff,
			Value:          "Locked",
			Battery:        92,
			ConnectionType: ConnZigbee,
			SerialNumber:   "LCK-AUG-440",
			IPAddress:      "N/A (Zigbee)",
			ModelNumber:    "AUG-WIFI-SMT",
		},
		{
			ID:             "5",
			Name:           "Bedroom Fan",
			Type:           TypePlug,
			Room:           "Bedroom",
			Status:         StatusOff,
			ConnectionType: ConnWiFi,
			SerialNumber:   "PLG-SON-B1",
			IPAddress:      "192.168.1.108",
			ModelNumber:    "SONOFF-S31",
		},
		{
			ID:             "6",
			Name:           "Window Sensor",
			Type:           TypeSensor,
			Room:           "Living Room",
			Status:         StatusOn,
			Value:          "Closed",
			ConnectionType: ConnZigbee,
			SerialNumber:   "SNS-AQARA-D1",
			IPAddress:      "N/A (Zigbee)",
			ModelNumber:    "MCCGQ11LM",
		},
	}
}

func seedAutomations() []Automation {
	return []Automation{
		{
			ID:      "1",
			Name:    "Good Morning",
			Active:  true,
			Trigger: "time",
			Time:    "07:00 AM",
			Days:    []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			Actions: []string{"Turn on Bedroom Lights", "Set Thermostat to 22°C", "Open Blinds"},
		},
		{
			ID:      "2",
			Name:    "Movie Night",
			Active:  false,
			Trigger: "manual",
			Actions: []string{"Dim Living Room Lights to 20%", "Turn on TV", "Set LED Strip to Blue"},
		},
		{
			ID:      "3",
			Name:    "Away Mode",
			Active:  true,
			Trigger: "gps",
			Actions: []string{"Lock Front Door", "Turn off all lights", "Arm Security System"},
		},
	}
}
