package providers

import (
	"fmt"
	"formpick/internal/structures"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var defaultMachines = []string{
	"레그프레스",
	"레그익스텐션",
	"레그컬",
	"랫풀다운",
	"시티드로우",
	"펙덱플라이",
	"케이블머신",
	"덤벨",
	"바벨",
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("webServer.host", "127.0.0.1")
	v.SetDefault("persistence.writeThrough", true)
	v.SetDefault("studio.timezone", "Asia/Seoul")
	v.SetDefault("studio.recentLogLimit", 30)
	v.SetDefault("studio.defaultDuration", 50)
	v.SetDefault("studio.minPhotos", 3)
	v.SetDefault("studio.machines", defaultMachines)
	v.SetDefault("cache.ttl", "5s")

	v.BindEnv("logger.level", "FORMPICK_LOG_LEVEL")
	v.BindEnv("persistence.filePath", "FORMPICK_DATA_FILE")
	v.BindEnv("persistence.saveInterval", "FORMPICK_SAVE_INTERVAL")
	v.BindEnv("persistence.writeThrough", "FORMPICK_WRITE_THROUGH")
	v.BindEnv("cache.enabled", "FORMPICK_CACHE_ENABLED")
	v.BindEnv("cache.size", "FORMPICK_CACHE_SIZE")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "FormpickStudioDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
