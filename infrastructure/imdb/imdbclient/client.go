// Package imdbclient baixa os datasets públicos do IMDb usados pelo pipeline
package imdbclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/media-trends-api/internal/config"
)

// Arquivos necessários para a construção do catálogo
var DatasetFilenames = []string{
	"title.basics.tsv.gz",
	"title.ratings.tsv.gz",
}

type Client interface {
	DownloadDatasets(ctx context.Context, dir string, overwrite bool) error
}

type IMDbClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &IMDbClient{
		Cfg: cfg,
		httpClient: &http.Client{
			// Dumps completos passam de 200MB; o timeout cobre o download inteiro
			Timeout: 30 * time.Minute,
		},
	}
}

// DownloadDatasets grava os dumps em dir. Arquivos já presentes são mantidos,
// a menos que overwrite seja verdadeiro.
func (c *IMDbClient) DownloadDatasets(ctx context.Context, dir string, overwrite bool) error {
	for _, filename := range DatasetFilenames {
		outPath := filepath.Join(dir, filename)

		if !overwrite {
			if _, err := os.Stat(outPath); err == nil {
				logrus.WithField("arquivo", outPath).Debug("Dataset já existe, download ignorado")
				continue
			}
		}

		url := fmt.Sprintf("%s/%s", c.Cfg.IMDb.BaseURL, filename)
		if err := c.downloadFile(ctx, url, outPath); err != nil {
			return err
		}
	}

	return nil
}

// downloadFile transfere a resposta direto para o disco, sem carregar o dump
// inteiro em memória. Escreve em arquivo temporário e renomeia no final para
// nunca deixar um dump truncado com o nome definitivo.
func (c *IMDbClient) downloadFile(ctx context.Context, url, outPath string) error {
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar requisição para %s", url)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "erro ao baixar %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("download de %s retornou status %s", url, resp.Status)
	}

	tmpPath := outPath + ".part"
	file, err := os.Create(tmpPath)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar %s", tmpPath)
	}

	written, err := io.Copy(file, resp.Body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "erro ao gravar %s", tmpPath)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return errors.Wrapf(err, "erro ao mover %s para %s", tmpPath, outPath)
	}

	logrus.WithFields(logrus.Fields{
		"url":         url,
		"arquivo":     outPath,
		"bytes":       written,
		"duracao_seg": time.Since(started).Seconds(),
	}).Info("Dataset do IMDb baixado com sucesso")

	return nil
}
