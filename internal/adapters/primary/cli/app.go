// Package cli is the command-line client of the inventory API. It drives
// the same services as the web frontend.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	urcli "github.com/urfave/cli"

	"vehicle-inventory-frontend/internal/config"
	"vehicle-inventory-frontend/internal/core/domain"
	ports "vehicle-inventory-frontend/internal/core/ports/output"
	"vehicle-inventory-frontend/internal/core/services"
)

var AppVersion = "0.1.0"

// Connector builds the API client once the global flags are known.
type Connector func(cfg config.APIConfig) ports.InventoryAPI

type runner struct {
	defaults config.APIConfig
	connect  Connector
	in       *bufio.Reader
	out      io.Writer
}

// NewApp wires the command tree. defaults seed --api-url and --timeout;
// in is read by delete confirmations and out receives every result.
func NewApp(defaults config.APIConfig, connect Connector, in io.Reader, out io.Writer) *urcli.App {
	r := &runner{
		defaults: defaults,
		connect:  connect,
		in:       bufio.NewReader(in),
		out:      out,
	}

	app := urcli.NewApp()
	app.Name = "inventario"
	app.Usage = "Gerencia carros e modelos do inventário de veículos"
	app.Version = AppVersion
	app.Writer = out
	app.ErrWriter = out

	app.Flags = []urcli.Flag{
		urcli.StringFlag{
			Name:  "api-url",
			Usage: "Base URL of the inventory API",
			Value: defaults.BaseURL,
		},
		urcli.DurationFlag{
			Name:  "timeout",
			Usage: "Timeout of each API request",
			Value: defaults.Timeout,
		},
		urcli.BoolFlag{
			Name:  "json",
			Usage: "Print results as JSON",
		},
	}

	app.Commands = []urcli.Command{
		r.carrosCommand(),
		r.modelosCommand(),
	}
	return app
}

func (r *runner) api(c *urcli.Context) ports.InventoryAPI {
	cfg := r.defaults
	if v := c.GlobalString("api-url"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if d := c.GlobalDuration("timeout"); d > 0 {
		cfg.Timeout = d
	}
	return r.connect(cfg)
}

func (r *runner) jsonOutput(c *urcli.Context) bool {
	return c.GlobalBool("json")
}

var yesFlag = urcli.BoolFlag{
	Name:  "yes, y",
	Usage: "Skip the confirmation prompt",
}

// confirm asks msg on the terminal. Only "s" or "sim" confirm.
func (r *runner) confirm(c *urcli.Context, msg string) (bool, error) {
	if c.Bool("yes") {
		return true, nil
	}

	fmt.Fprintf(r.out, "%s [s/N] ", msg)
	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "sim":
		return true, nil
	}
	fmt.Fprintln(r.out, "Operação cancelada.")
	return false, nil
}

func argID(c *urcli.Context, pos int, name string) (int64, error) {
	raw := c.Args().Get(pos)
	if raw == "" {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s %q: %w", name, raw, domain.ErrInvalidID)
	}
	return id, nil
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Minute)
}

func carroService(api ports.InventoryAPI) *services.CarroService {
	return services.NewCarroService(api)
}

func modeloService(api ports.InventoryAPI) *services.ModeloService {
	return services.NewModeloService(api, api)
}

func imagemService(api ports.InventoryAPI) *services.ImagemService {
	return services.NewImagemService(api, api)
}
