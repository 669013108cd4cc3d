package cli

import (
	"fmt"

	"github.com/julianstephens/habitdash/internal/keyring"
)

type KeyringCmd struct {
	Set   KeyringSetCmd   `cmd:"" help:"Store the Postgres connection string in the OS keyring."`
	Clear KeyringClearCmd `cmd:"" help:"Remove the stored connection string."`
}

type KeyringSetCmd struct {
	ConnStr string `arg:"" help:"Postgres connection string or DSN."`
}

func (c *KeyringSetCmd) Run(ctx *Context) error {
	if err := keyring.SetConnectionString(c.ConnStr); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type KeyringClearCmd struct{}

func (c *KeyringClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Connection string removed from OS keyring.")
	return nil
}
