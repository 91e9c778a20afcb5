package cli

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/nadocloud/nadoquest/internal/client/api"
)

// Upload sends a local file through the backend media proxy and prints
// the retrieval URL.
func (a *App) Upload(ctx context.Context, path string) error {
	if !a.requireAuth("/media") {
		return nil
	}

	res, err := a.uploadFile(ctx, path)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Uploaded as", res.Key)
	printlnFn("URL:", res.URL)
	return nil
}

func (a *App) uploadFile(ctx context.Context, path string) (api.UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return api.UploadResult{}, err
	}
	defer f.Close()

	return a.client.Media.Upload(ctx, filepath.Base(path), f)
}

// Reset wipes all locally persisted state after an explicit confirmation.
// The backend account is untouched.
func (a *App) Reset(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Wipe all local state? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Aborted")
		return nil
	}

	if err := a.reset(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Local state cleared")
	return nil
}
