package main

import (
	// Packages
	model "github.com/mutablelogic/go-transcribe/pkg/model"
)

type DeleteCmd struct {
	Model string `arg:"" help:"Model variant to delete"`
}

func (cmd *DeleteCmd) Run(app *Globals) error {
	store, err := model.NewStore(app.ModelDir)
	if err != nil {
		return err
	}
	if err := store.Delete(cmd.Model); err != nil {
		return err
	}
	return ModelsCmd{}.Run(app)
}
