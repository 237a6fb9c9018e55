package cli

import (
	"fmt"
	"strconv"

	urcli "github.com/urfave/cli"

	"vehicle-inventory-frontend/internal/core/domain"
)

func (r *runner) carrosCommand() urcli.Command {
	return urcli.Command{
		Name:    "carros",
		Aliases: []string{"c"},
		Usage:   "Operações sobre carros",
		Subcommands: urcli.Commands{
			{
				Name:   "list",
				Usage:  "Lista os carros",
				Action: r.listCarros,
			},
			{
				Name:      "show",
				Usage:     "Mostra um carro e suas imagens",
				ArgsUsage: "CARRO_ID",
				Action:    r.showCarro,
			},
			{
				Name:      "delete",
				Usage:     "Exclui um carro",
				ArgsUsage: "CARRO_ID",
				Flags:     []urcli.Flag{yesFlag},
				Action:    r.deleteCarro,
			},
			{
				Name:      "delete-imagem",
				Usage:     "Exclui uma imagem de um carro",
				ArgsUsage: "CARRO_ID IMAGEM_ID",
				Flags:     []urcli.Flag{yesFlag},
				Action:    r.deleteImagem,
			},
			{
				Name:      "set-principal",
				Usage:     "Define a imagem principal de um carro",
				ArgsUsage: "CARRO_ID IMAGEM_ID",
				Action:    r.setPrincipal,
			},
			{
				Name:      "reorder",
				Usage:     "Define a ordem das imagens de um carro",
				ArgsUsage: "CARRO_ID IMAGEM_ID...",
				Action:    r.reorder,
			},
		},
	}
}

func (r *runner) listCarros(c *urcli.Context) error {
	ctx, cancel := commandContext()
	defer cancel()

	carros, err := carroService(r.api(c)).List(ctx)
	if err != nil {
		return fmt.Errorf("list carros: %w", err)
	}

	if r.jsonOutput(c) {
		views := make([]carroView, 0, len(carros))
		for _, carro := range carros {
			views = append(views, newCarroView(carro))
		}
		return writeJSON(r.out, views)
	}
	return printCarros(r.out, carros)
}

func (r *runner) showCarro(c *urcli.Context) error {
	id, err := argID(c, 0, "CARRO_ID")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	carro, err := carroService(r.api(c)).Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get carro %d: %w", id, err)
	}

	if r.jsonOutput(c) {
		return writeJSON(r.out, newCarroView(carro))
	}
	return printCarro(r.out, carro)
}

func (r *runner) deleteCarro(c *urcli.Context) error {
	id, err := argID(c, 0, "CARRO_ID")
	if err != nil {
		return err
	}

	ok, err := r.confirm(c, fmt.Sprintf("Tem certeza que deseja excluir o carro #%d?", id))
	if err != nil || !ok {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := carroService(r.api(c)).Delete(ctx, id); err != nil {
		return fmt.Errorf("delete carro %d: %w", id, err)
	}
	fmt.Fprintf(r.out, "Carro #%d excluído.\n", id)
	return nil
}

func (r *runner) deleteImagem(c *urcli.Context) error {
	carroID, err := argID(c, 0, "CARRO_ID")
	if err != nil {
		return err
	}
	imagemID, err := argID(c, 1, "IMAGEM_ID")
	if err != nil {
		return err
	}

	ok, err := r.confirm(c, fmt.Sprintf("Tem certeza que deseja excluir a imagem #%d do carro #%d?", imagemID, carroID))
	if err != nil || !ok {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := imagemService(r.api(c)).Delete(ctx, carroID, imagemID); err != nil {
		return fmt.Errorf("delete imagem %d of carro %d: %w", imagemID, carroID, err)
	}
	fmt.Fprintf(r.out, "Imagem #%d excluída.\n", imagemID)
	return nil
}

func (r *runner) setPrincipal(c *urcli.Context) error {
	carroID, err := argID(c, 0, "CARRO_ID")
	if err != nil {
		return err
	}
	imagemID, err := argID(c, 1, "IMAGEM_ID")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	changed, err := imagemService(r.api(c)).SetPrincipal(ctx, carroID, imagemID)
	if err != nil {
		return fmt.Errorf("set imagem principal of carro %d: %w", carroID, err)
	}
	if !changed {
		fmt.Fprintf(r.out, "A imagem #%d já é a principal.\n", imagemID)
		return nil
	}
	fmt.Fprintf(r.out, "Imagem #%d definida como principal.\n", imagemID)
	return nil
}

func (r *runner) reorder(c *urcli.Context) error {
	carroID, err := argID(c, 0, "CARRO_ID")
	if err != nil {
		return err
	}

	rest := c.Args().Tail()
	if len(rest) == 0 {
		return fmt.Errorf("missing IMAGEM_ID arguments: %w", domain.ErrInvalidImageOrder)
	}
	ids := make([]int64, 0, len(rest))
	for _, raw := range rest {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("imagem id %q: %w", raw, domain.ErrInvalidImageOrder)
		}
		ids = append(ids, id)
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := imagemService(r.api(c)).Reorder(ctx, carroID, ids); err != nil {
		return fmt.Errorf("reorder imagens of carro %d: %w", carroID, err)
	}
	fmt.Fprintln(r.out, "Ordem das imagens atualizada.")
	return nil
}
