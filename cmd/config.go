package cmd

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	Timezone              string
	KafkaHost             string
	KafkaOrderEventsTopic string
	ReportExportDir       string
	ReportExportSchedule  string
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// Location resolves the restaurant timezone. An empty name means UTC.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// KafkaBrokers splits KAFKA_HOST on commas. Nil means event publishing is off.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c Config) OrderEventsTopic() string {
	if c.KafkaOrderEventsTopic == "" {
		return "restaurant.order-events"
	}
	return c.KafkaOrderEventsTopic
}
