package cli

import (
	"fmt"

	urcli "github.com/urfave/cli"

	"vehicle-inventory-frontend/internal/core/domain"
)

var modeloFlags = []urcli.Flag{
	urcli.StringFlag{Name: "marca", Usage: "Marca do modelo"},
	urcli.StringFlag{Name: "nome", Usage: "Nome do modelo"},
	urcli.StringFlag{Name: "descricao", Usage: "Descrição do modelo"},
	urcli.IntFlag{Name: "ano", Usage: "Ano do modelo"},
}

func (r *runner) modelosCommand() urcli.Command {
	return urcli.Command{
		Name:    "modelos",
		Aliases: []string{"m"},
		Usage:   "Operações sobre modelos",
		Subcommands: urcli.Commands{
			{
				Name:   "list",
				Usage:  "Lista os modelos por marca e nome",
				Action: r.listModelos,
			},
			{
				Name:      "show",
				Usage:     "Mostra um modelo",
				ArgsUsage: "MODELO_ID",
				Action:    r.showModelo,
			},
			{
				Name:   "create",
				Usage:  "Cadastra um modelo",
				Flags:  modeloFlags,
				Action: r.createModelo,
			},
			{
				Name:      "update",
				Usage:     "Altera um modelo; campos omitidos são mantidos",
				ArgsUsage: "MODELO_ID",
				Flags:     modeloFlags,
				Action:    r.updateModelo,
			},
			{
				Name:      "delete",
				Usage:     "Exclui um modelo sem carros vinculados",
				ArgsUsage: "MODELO_ID",
				Flags:     []urcli.Flag{yesFlag},
				Action:    r.deleteModelo,
			},
		},
	}
}

func (r *runner) listModelos(c *urcli.Context) error {
	ctx, cancel := commandContext()
	defer cancel()

	modelos, err := modeloService(r.api(c)).List(ctx)
	if err != nil {
		return fmt.Errorf("list modelos: %w", err)
	}

	if r.jsonOutput(c) {
		views := make([]*modeloView, 0, len(modelos))
		for _, m := range modelos {
			views = append(views, newModeloView(m))
		}
		return writeJSON(r.out, views)
	}
	return printModelos(r.out, modelos)
}

func (r *runner) showModelo(c *urcli.Context) error {
	id, err := argID(c, 0, "MODELO_ID")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	modelo, err := modeloService(r.api(c)).Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get modelo %d: %w", id, err)
	}
	return r.printModelo(c, modelo)
}

func (r *runner) createModelo(c *urcli.Context) error {
	input := domain.ModeloInput{
		Marca:     c.String("marca"),
		Nome:      c.String("nome"),
		Descricao: c.String("descricao"),
		Ano:       c.Int("ano"),
	}

	ctx, cancel := commandContext()
	defer cancel()

	modelo, err := modeloService(r.api(c)).Create(ctx, input)
	if err != nil {
		return fmt.Errorf("create modelo: %w", err)
	}
	return r.printModelo(c, modelo)
}

func (r *runner) updateModelo(c *urcli.Context) error {
	id, err := argID(c, 0, "MODELO_ID")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	svc := modeloService(r.api(c))
	current, err := svc.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get modelo %d: %w", id, err)
	}

	input := domain.ModeloInput{
		Marca:     current.Marca,
		Nome:      current.Nome,
		Descricao: current.Descricao,
		Ano:       current.Ano,
	}
	if c.IsSet("marca") {
		input.Marca = c.String("marca")
	}
	if c.IsSet("nome") {
		input.Nome = c.String("nome")
	}
	if c.IsSet("descricao") {
		input.Descricao = c.String("descricao")
	}
	if c.IsSet("ano") {
		input.Ano = c.Int("ano")
	}

	modelo, err := svc.Update(ctx, id, input)
	if err != nil {
		return fmt.Errorf("update modelo %d: %w", id, err)
	}
	return r.printModelo(c, modelo)
}

func (r *runner) deleteModelo(c *urcli.Context) error {
	id, err := argID(c, 0, "MODELO_ID")
	if err != nil {
		return err
	}

	ok, err := r.confirm(c, fmt.Sprintf("Tem certeza que deseja excluir o modelo #%d?", id))
	if err != nil || !ok {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := modeloService(r.api(c)).Delete(ctx, id); err != nil {
		return fmt.Errorf("delete modelo %d: %w", id, err)
	}
	fmt.Fprintf(r.out, "Modelo #%d excluído.\n", id)
	return nil
}

func (r *runner) printModelo(c *urcli.Context, m *domain.Modelo) error {
	if r.jsonOutput(c) {
		return writeJSON(r.out, newModeloView(m))
	}
	return printModelo(r.out, m)
}
