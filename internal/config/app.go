package config

type AppConfig struct {
	Server  ServerConfig
	Scraper ScraperConfig
	Log     LogConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	scraperCfg, err := LoadScraper()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server:  serverCfg,
		Scraper: scraperCfg,
		Log:     logCfg,
	}, nil
}
