package transfer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/pkg/logger"
)

// BackupUseCase copie le fichier SQLite vers une destination. Le contrat de
// sauvegarde est la copie du fichier persisté lui-même : l'artefact se
// restaure en le remettant à la place du fichier de base.
type BackupUseCase struct {
	dbPath string
	log    *logger.Logger
}

// NewBackupUseCase construit le cas d'usage sur le chemin du fichier de base.
func NewBackupUseCase(dbPath string, log *logger.Logger) *BackupUseCase {
	return &BackupUseCase{dbPath: dbPath, log: log}
}

// Backup copie la base vers in.Path, ou vers backup-<date ISO>.sqlite si
// aucune destination n'est donnée.
func (uc *BackupUseCase) Backup(in dto.BackupRequest) (*dto.BackupResponse, error) {
	dest := in.Path
	if dest == "" {
		dest = fmt.Sprintf("backup-%s.sqlite", time.Now().Format("2006-01-02"))
	}

	src, err := os.Open(uc.dbPath)
	if err != nil {
		return nil, fmt.Errorf("sauvegarde: ouvrir la base: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("sauvegarde: créer %s: %w", dest, err)
	}
	defer out.Close()

	size, err := io.Copy(out, src)
	if err != nil {
		return nil, fmt.Errorf("sauvegarde: copier: %w", err)
	}
	if err := out.Sync(); err != nil {
		return nil, fmt.Errorf("sauvegarde: sync: %w", err)
	}

	uc.log.Info().Str("path", dest).Int64("size", size).Msg("sauvegarde créée")
	return &dto.BackupResponse{Path: dest, Size: size}, nil
}
