// Package database manages the optional SQL connection used for sync history.
//
// It wraps GORM and supports two drivers:
//   - sqlite (default): a local file next to the key document, no server needed.
//   - mysql: a shared server when several machines report into one history.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("history disabled", zap.Error(err))
//	}
package database
