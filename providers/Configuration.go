package providers

import (
	"encoding/json"
	"time"

	"github.com/mfdls/medford-lsp/i18n"
	. "github.com/mfdls/medford-lsp/types"
	"github.com/mitchellh/mapstructure"
)

func ConfigurationChange(ctx *Ctx, config *ClientConfiguration) (err error) {
	err = applyConfiguration(config)

	diagnosticAllDocs(ctx)

	return
}

type ClientConfiguration struct {
	Locale   string `json:"locale" mapstructure:"locale"`
	Debounce int    `json:"debounce" mapstructure:"debounce"`
}

func GetClientConfiguration(src any) (res ClientConfiguration, err error) {
	err = mapstructure.Decode(src, &res)

	return
}

func applyConfiguration(config *ClientConfiguration) (err error) {
	if config.Locale != "" {
		err = i18n.SetLocale(config.Locale)
	}

	if config.Debounce > 0 {
		debouncer.SetDelay(time.Duration(config.Debounce) * time.Millisecond)
	}

	return
}

type ConfigurationHandlers struct {
	Change ConfigChangeFunc
}

func (req *ConfigurationHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case ConfigChangeMethod:
		validMethod = true

		var params ClientConfiguration
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			err = req.Change(ctx, &params)
		}
	}

	return
}

const ConfigChangeMethod = "config/change"

type ConfigChangeFunc func(*Ctx, *ClientConfiguration) error
