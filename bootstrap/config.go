package bootstrap

import (
	"github.com/kbukum/tabkit/config"
)

// Config is the interface constraint for application configuration types.
// Any struct that embeds config.ServiceConfig and defines ApplyDefaults and
// Validate satisfies it; config.AppConfig does.
//
//	app, err := bootstrap.NewApp[*config.AppConfig](cfg)
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
