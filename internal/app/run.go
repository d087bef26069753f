package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/specialistvlad/labwarego/internal/ctxlog"
	"github.com/specialistvlad/labwarego/internal/hcl_adapter"
	"github.com/specialistvlad/labwarego/internal/resource"
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	var err error
	switch a.config.Command {
	case CommandList:
		err = a.list()
	case CommandDescribe:
		err = a.describe(ctx, a.config.Args[0], a.config.Args[1])
	case CommandStack:
		err = a.stack(ctx, a.config.Args)
	default:
		err = fmt.Errorf("unknown command '%s'", a.config.Command)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) list() error {
	models := a.catalog.Models()
	for _, m := range models {
		if _, err := fmt.Fprintln(a.outW, m); err != nil {
			return err
		}
	}
	a.logger.Info("Listed labware models.", "count", len(models))
	return nil
}

func (a *App) describe(ctx context.Context, model, name string) error {
	item, err := a.catalog.Create(ctx, model, name)
	if err != nil {
		return err
	}

	var out []byte
	switch a.config.OutputFormat {
	case OutputHCL:
		out, err = hcl_adapter.EncodeHCL(item.Descriptor())
	default:
		out, err = hcl_adapter.EncodeJSON(item.Descriptor())
		out = append(out, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode '%s': %w", name, err)
	}

	_, err = a.outW.Write(out)
	return err
}

// stack expects PLATE_X PLATE_Y PLATE_Z MODEL.
func (a *App) stack(ctx context.Context, args []string) error {
	var dims [3]float64
	for i, raw := range args[:3] {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid plate dimension '%s': %w", raw, err)
		}
		dims[i] = v
	}

	plate := resource.NewPlate("plate", dims[0], dims[1], dims[2], "plate")
	if err := plate.Validate(); err != nil {
		return err
	}

	item, err := a.catalog.Create(ctx, args[3], "lid")
	if err != nil {
		return err
	}
	defer a.catalog.Release("lid")

	lid, ok := item.(*resource.Lid)
	if !ok {
		return fmt.Errorf("model '%s' is not a lid", args[3])
	}
	if err := plate.AssignLid(lid); err != nil {
		return err
	}

	a.logger.Debug("Lid assigned.", "model", lid.Model, "lid_z", lid.Location.Z)
	_, err = fmt.Fprintf(a.outW, "%s\n", strconv.FormatFloat(plate.StackedHeight(), 'f', -1, 64))
	return err
}
