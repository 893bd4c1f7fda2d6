package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/42nibbles/SNTPv4/pkg/sntp"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultConfigPath = "/etc/sntp.toml"

func main() {
	var configPath string
	var server string
	var verbose bool
	flag.StringVar(&configPath, "config", defaultConfigPath, "Path to the TOML config file.")
	flag.StringVar(&server, "server", "", "NTP server name, overriding the config file.")
	flag.BoolVar(&verbose, "v", false, "Log the on-wire diagnostics.")
	flag.Parse()

	config, err := sntp.LoadConfig(configPath)
	if err != nil {
		logrus.Fatal("Could not read config: ", err)
	}
	if server != "" {
		config.Server = server
	}

	setupLogging(config, verbose)

	client := sntp.New(config.Server)
	if err := client.SetTimeout(config.Timeout); err != nil {
		logrus.Fatal("Invalid timeout: ", err)
	}

	result, err := client.Time(time.Now().Unix())
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}

	fmt.Println(time.Unix(result.Time, 0).UTC().Format(time.RFC3339))
}

func setupLogging(config sntp.Config, verbose bool) {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	if verbose {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if config.LogFile != "" {
		logrus.SetOutput(&lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}
}
