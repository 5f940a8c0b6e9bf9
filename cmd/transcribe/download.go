package main

import (
	"fmt"
	"time"

	// Packages
	model "github.com/mutablelogic/go-transcribe/pkg/model"
)

type DownloadCmd struct {
	Model string `arg:"" help:"Model variant to download"`
}

func (cmd *DownloadCmd) Run(app *Globals) error {
	store, err := model.NewStore(app.ModelDir)
	if err != nil {
		return err
	}

	t := time.Now()
	downloaded, err := store.Download(app.ctx, cmd.Model, func(curBytes, totalBytes uint64) {
		if time.Since(t) > time.Second {
			pct := float64(curBytes) / float64(totalBytes) * 100
			app.log.Info().Str("model", cmd.Model).Msgf("downloaded %.0f%%", pct)
			t = time.Now()
		}
	})
	if err != nil {
		return err
	}

	fmt.Println(downloaded)
	return nil
}
