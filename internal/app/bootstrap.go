package app

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"coinwagon/pkg/cache"
	"coinwagon/pkg/engine"
	"coinwagon/pkg/provider"
	"coinwagon/pkg/service"
)

// InitConfig loads configs/config.yml and fills in defaults. A missing
// file is tolerated so the CLI works out of the box; whatever the file
// sets overrides the defaults.
func InitConfig() error {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("cache.ttl", "5m")
	viper.SetDefault("providers.timeout", "10s")
	viper.SetDefault("providers.coingecko.base_url", "https://api.coingecko.com")
	viper.SetDefault("providers.blockcypher.base_url", "https://api.blockcypher.com")
	viper.SetDefault("providers.blockchair.base_url", "https://api.blockchair.com")
	viper.SetDefault("providers.balance_order", []string{"blockcypher", "blockchair"})

	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

// BuildServices wires cache, providers, engine and services from the
// loaded configuration. The balance fallback order is configuration, never
// adapted at runtime.
func BuildServices() *service.Service {
	timeout := viper.GetDuration("providers.timeout")

	priceChain := provider.NewChain(
		provider.NewCoinGecko(
			viper.GetString("providers.coingecko.base_url"),
			os.Getenv("COINGECKO_API_KEY"),
			timeout,
		),
	)

	balanceByName := map[string]provider.Provider{
		"blockcypher": provider.NewBlockCypher(viper.GetString("providers.blockcypher.base_url"), timeout),
		"blockchair":  provider.NewBlockchair(viper.GetString("providers.blockchair.base_url"), timeout),
	}
	var balanceProviders []provider.Provider
	for _, name := range viper.GetStringSlice("providers.balance_order") {
		p, ok := balanceByName[name]
		if !ok {
			logrus.Warnf("unknown balance provider %q in config, skipping", name)
			continue
		}
		balanceProviders = append(balanceProviders, p)
	}

	eng := engine.New(
		cache.New(viper.GetDuration("cache.ttl")),
		priceChain,
		provider.NewChain(balanceProviders...),
	)
	return service.NewService(eng)
}
