package common

import (
    "os"
    "log"
    "encoding/json"
    "path/filepath"
)

const CurrentVersion = 1

type ConfigData struct {
    Version int `json:"version,omitempty"`
    /* cycles to run when no -cycles argument is given */
    Cycles int `json:"cycles,omitempty"`
    /* behave like real hardware instead of the original interpreter */
    Accurate bool `json:"accurate,omitempty"`
    Trace bool `json:"trace,omitempty"`
    /* size of one memory cell in the display window */
    DisplayScale int `json:"display-scale,omitempty"`
    /* cycles the display runs per frame */
    DisplayCycles int `json:"display-cycles,omitempty"`
}

/* make the directory where the config file lives, which is ~/.config/nes6502 on linux */
func GetOrCreateConfigDir() (string, error) {
    configDir, err := os.UserConfigDir()
    if err != nil {
        return "", err
    }
    configPath := filepath.Join(configDir, "nes6502")
    err = os.MkdirAll(configPath, 0755)
    if err != nil {
        return "", err
    }

    return configPath, nil
}

func DefaultConfigData() ConfigData {
    return ConfigData{
        Version: CurrentVersion,
        Cycles: 1000000,
        DisplayScale: 12,
        DisplayCycles: 2000,
    }
}

/* fill in anything that was left out of the file */
func (data ConfigData) withDefaults() ConfigData {
    defaults := DefaultConfigData()
    if data.Cycles <= 0 {
        data.Cycles = defaults.Cycles
    }
    if data.DisplayScale <= 0 {
        data.DisplayScale = defaults.DisplayScale
    }
    if data.DisplayCycles <= 0 {
        data.DisplayCycles = defaults.DisplayCycles
    }
    return data
}

func LoadConfigData() (ConfigData, error) {
    configPath, err := GetOrCreateConfigDir()
    if err != nil {
        return DefaultConfigData(), err
    }
    config := filepath.Join(configPath, "config.json")
    file, err := os.Open(config)
    if err != nil {
        return DefaultConfigData(), err
    }
    defer file.Close()

    var data ConfigData
    decoder := json.NewDecoder(file)
    err = decoder.Decode(&data)
    if err != nil {
        log.Printf("Could not load config data: %v", err)
        return DefaultConfigData(), err
    }

    if data.Version != CurrentVersion {
        return DefaultConfigData(), nil
    }

    return data.withDefaults(), nil
}

/* create the config.json file in the config dir */
func SaveConfigData(data ConfigData) error {
    configPath, err := GetOrCreateConfigDir()
    if err != nil {
        return err
    }
    config := filepath.Join(configPath, "config.json")

    file, err := os.Create(config)
    if err != nil {
        return err
    }
    defer file.Close()

    encoder := json.NewEncoder(file)
    encoder.SetIndent("", "  ")
    return encoder.Encode(data)
}
