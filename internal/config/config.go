package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config 本地服务和命令行工具共用的配置。
// 先读 .env（没有也没关系），再读环境变量；命令行 flag 由各个 main 自己覆盖。
type Config struct {
	Addr         string
	LogLevel     zerolog.Level
	WebDir       string
	DefaultDepth int
	MaxDepth     int
	TimeLimit    time.Duration
	DefaultSize  int
}

func Default() Config {
	return Config{
		Addr:         ":2888",
		LogLevel:     zerolog.InfoLevel,
		WebDir:       "./web",
		DefaultDepth: 3,
		MaxDepth:     6,
		DefaultSize:  11,
	}
}

// Load 读取 .env 和环境变量。files 为空时读当前目录的 .env。
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return FromEnv()
}

// FromEnv 只看环境变量，非法值一律回落到默认值
func FromEnv() Config {
	c := Default()
	c.Addr = getEnv("HEX_ADDR", c.Addr)
	c.WebDir = getEnv("HEX_WEB_DIR", c.WebDir)
	c.DefaultDepth = getEnvInt("HEX_DEFAULT_DEPTH", c.DefaultDepth)
	c.MaxDepth = getEnvInt("HEX_MAX_DEPTH", c.MaxDepth)
	c.DefaultSize = getEnvInt("HEX_DEFAULT_SIZE", c.DefaultSize)
	if ms := getEnvInt("HEX_TIME_LIMIT_MS", 0); ms > 0 {
		c.TimeLimit = time.Duration(ms) * time.Millisecond
	}
	if lvl, err := zerolog.ParseLevel(strings.ToLower(getEnv("LOG_LEVEL", "info"))); err == nil && lvl != zerolog.NoLevel {
		c.LogLevel = lvl
	}

	if c.DefaultDepth < 1 {
		c.DefaultDepth = 1
	}
	if c.MaxDepth < c.DefaultDepth {
		c.MaxDepth = c.DefaultDepth
	}
	return c
}

// ClampDepth 把请求里的深度限制在 [1, MaxDepth]，<=0 用默认深度
func (c Config) ClampDepth(depth int) int {
	if depth <= 0 {
		depth = c.DefaultDepth
	}
	if depth > c.MaxDepth {
		depth = c.MaxDepth
	}
	return depth
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// Logger 按配置设置全局级别并替换 zerolog 的全局 logger。
// console 为 true 时输出人类可读格式（命令行工具用），否则输出 JSON。
func (c Config) Logger(console bool) zerolog.Logger {
	zerolog.SetGlobalLevel(c.LogLevel)
	var l zerolog.Logger
	if console {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	} else {
		l = zerolog.New(os.Stderr)
	}
	l = l.With().Timestamp().Logger()
	log.Logger = l
	return l
}
