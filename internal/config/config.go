package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the console server settings.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Data   DataConfig   `mapstructure:"data"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
	Table  TableConfig  `mapstructure:"table"`
	Export ExportConfig `mapstructure:"export"`
}

type AppConfig struct {
	Addr    string `mapstructure:"addr"`
	GinMode string `mapstructure:"gin_mode"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DataConfig picks where table records come from: "memory" or "mysql".
type DataConfig struct {
	Source string `mapstructure:"source"`
}

type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

type TableConfig struct {
	RowsPerPageOptions []int `mapstructure:"rows_per_page_options"`
}

type ExportConfig struct {
	PDFOrientation string `mapstructure:"pdf_orientation"`
	// Formats lists the enabled export formats; empty leaves every table's own flags alone.
	Formats []string `mapstructure:"formats"`
}

const (
	SourceMemory = "memory"
	SourceMySQL  = "mysql"
)

// DefaultDSN points at a local MySQL with the console schema.
const DefaultDSN = "root:@tcp(127.0.0.1:3306)/travel_console?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"

// Load reads configuration from file and env. Env var overrides use prefix CONSOLE_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("app.addr", ":8080")
	v.SetDefault("app.gin_mode", "")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("data.source", SourceMemory)
	v.SetDefault("mysql.dsn", DefaultDSN)
	v.SetDefault("table.rows_per_page_options", []int{10, 25, 50})
	v.SetDefault("export.pdf_orientation", "L")
	v.SetDefault("export.formats", []string{"csv", "pdf"})

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv("CONSOLE_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("console")
	}

	v.SetEnvPrefix("CONSOLE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// the file is optional unless CONSOLE_CONFIG names one
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c.normalize()
}

func (c Config) normalize() (Config, error) {
	c.App.Addr = strings.TrimSpace(c.App.Addr)
	if c.App.Addr == "" {
		c.App.Addr = ":8080"
	}
	c.Data.Source = strings.ToLower(strings.TrimSpace(c.Data.Source))
	switch c.Data.Source {
	case "":
		c.Data.Source = SourceMemory
	case SourceMemory, SourceMySQL:
	default:
		return Config{}, fmt.Errorf("data.source must be %q or %q, got %q", SourceMemory, SourceMySQL, c.Data.Source)
	}
	c.Export.PDFOrientation = strings.ToUpper(strings.TrimSpace(c.Export.PDFOrientation))
	if c.Export.PDFOrientation != "P" {
		c.Export.PDFOrientation = "L"
	}
	c.CORS.AllowedOrigins = splitList(c.CORS.AllowedOrigins)
	formats := splitList(c.Export.Formats)
	for i, f := range formats {
		formats[i] = strings.ToLower(f)
		if formats[i] != "csv" && formats[i] != "pdf" {
			return Config{}, fmt.Errorf("export.formats: unknown format %q", f)
		}
	}
	c.Export.Formats = formats
	return c, nil
}

// splitList trims items and splits the single comma separated string env overrides arrive as.
func splitList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
