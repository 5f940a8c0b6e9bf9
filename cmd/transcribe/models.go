package main

import (
	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	model "github.com/mutablelogic/go-transcribe/pkg/model"
)

type ModelsCmd struct{}

func (cmd ModelsCmd) Run(app *Globals) error {
	store, err := model.NewStore(app.ModelDir)
	if err != nil {
		return err
	}
	models, err := store.List()
	if err != nil {
		return err
	}
	if len(models) == 0 {
		app.log.Info().Str("dir", app.ModelDir).Msg("no models downloaded")
		return nil
	}
	return app.writer.Write(models, tablewriter.OptHeader())
}
