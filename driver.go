package auroradataapi

import (
	"context"
	"database/sql"
	"database/sql/driver"
)

// AuroraDataAPIDriver is the database/sql entry point, registered under the
// name "auroradataapi".
type AuroraDataAPIDriver struct{}

// Open parses the DSN and returns a new connection.
func (d AuroraDataAPIDriver) Open(dsn string) (driver.Conn, error) {
	logger.Info("Open")
	cfg, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	return d.OpenWithConfig(context.Background(), cfg)
}

// OpenWithConfig returns a new connection from an already built Config.
func (d AuroraDataAPIDriver) OpenWithConfig(ctx context.Context, cfg *Config) (driver.Conn, error) {
	ac, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &auroraConn{ac: ac}, nil
}

// OpenConnector parses the DSN once and returns a connector reusable across
// connections.
func (d AuroraDataAPIDriver) OpenConnector(dsn string) (driver.Connector, error) {
	cfg, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	return auroraConnector{driver: d, cfg: cfg}, nil
}

type auroraConnector struct {
	driver AuroraDataAPIDriver
	cfg    *Config
}

func (c auroraConnector) Connect(ctx context.Context) (driver.Conn, error) {
	cfg := *c.cfg
	return c.driver.OpenWithConfig(ctx, &cfg)
}

func (c auroraConnector) Driver() driver.Driver {
	return c.driver
}

func init() {
	sql.Register("auroradataapi", &AuroraDataAPIDriver{})
}
