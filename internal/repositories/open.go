package repositories

import (
	intconfig "travelconsole/internal/config"
	"travelconsole/internal/utils"
)

// OpenStore picks the store named by cfg.Data.Source, connecting to MySQL when asked.
func OpenStore(cfg intconfig.Config) (*Store, error) {
	if cfg.Data.Source != intconfig.SourceMySQL {
		utils.LogFields("", "store", "open", "source", "memory")
		return NewMemoryStore(), nil
	}
	db, err := intconfig.ConnectDB(cfg.MySQL.DSN)
	if err != nil {
		return nil, err
	}
	utils.LogFields("", "store", "open", "source", "mysql")
	return NewSQLStore(db), nil
}
