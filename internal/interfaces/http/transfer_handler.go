package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/application/transfer"
)

// TransferHandler gère les échanges en masse : sauvegarde, export, import et
// fiches tableur (protégé).
type TransferHandler struct {
	exportUC *transfer.ExportUseCase
	importUC *transfer.ImportUseCase
	backupUC *transfer.BackupUseCase
	sheetUC  *transfer.SheetUseCase
}

// NewTransferHandler construit le handler.
func NewTransferHandler(
	exportUC *transfer.ExportUseCase,
	importUC *transfer.ImportUseCase,
	backupUC *transfer.BackupUseCase,
	sheetUC *transfer.SheetUseCase,
) *TransferHandler {
	return &TransferHandler{exportUC: exportUC, importUC: importUC, backupUC: backupUC, sheetUC: sheetUC}
}

// Backup godoc
// @Summary      Sauvegarder la base (copie du fichier SQLite)
// @Tags         transfer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BackupRequest  true  "Destination (vide = backup-<date>.sqlite)"
// @Success      200   {object}  dto.Envelope
// @Router       /api/db/backup [post]
func (h *TransferHandler) Backup(c *fiber.Ctx) error {
	var in dto.BackupRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.backupUC.Backup(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Export godoc
// @Summary      Exporter une table vers un fichier CSV, JSON ou XLSX
// @Tags         transfer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExportRequest  true  "Table, format et destination"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope  "Table ou format inconnu"
// @Router       /api/db/export [post]
func (h *TransferHandler) Export(c *fiber.Ctx) error {
	var in dto.ExportRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.exportUC.Export(in); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"path": in.Path})
}

// Import godoc
// @Summary      Importer un fichier plat dans une table
// @Tags         transfer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "Table, format et fichier source"
// @Success      200   {object}  dto.Envelope  "Résumé : lignes importées et ignorées"
// @Router       /api/db/import [post]
func (h *TransferHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.importUC.Import(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// sheetRequest corps de génération d'une fiche tableur.
type sheetRequest struct {
	Template string `json:"template"` // stock | mouvements
	Path     string `json:"path"`
}

// Spreadsheet génère une fiche tableur depuis un gabarit nommé.
func (h *TransferHandler) Spreadsheet(c *fiber.Ctx) error {
	var in sheetRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if in.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("path requis"))
	}
	if err := h.sheetUC.Fill(in.Template, in.Path); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"path": in.Path})
}
