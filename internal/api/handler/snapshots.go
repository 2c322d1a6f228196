package handler

import (
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/media-trends-api/infrastructure/catalogfile"
	"github.com/vfg2006/media-trends-api/pkg/apiErrors"
)

// ListSnapshots retorna os snapshots conhecidos na pasta raiz de saída
func ListSnapshots(services TrendsServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshots, err := catalogfile.ListSnapshots(
			services.Config.DailyBuild.OutRoot,
			services.catalogFilename(),
			services.Config.DailyBuild.DatabaseFilename,
		)
		if err != nil {
			// Raiz ainda inexistente significa que o pipeline nunca executou
			if os.IsNotExist(errors.Cause(err)) {
				snapshots = nil
			} else {
				logrus.WithError(err).Error("Erro ao listar snapshots")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar snapshots", nil)
				return
			}
		}

		response := map[string]any{
			"snapshots": snapshots,
			"count":     len(snapshots),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Erro ao enviar a lista de snapshots")
		}
	}
}
