package dto

// ExportRequest export d'une table vers un fichier plat.
type ExportRequest struct {
	Table  string `json:"table"`  // item | supplier | location | type | stockmovement
	Format string `json:"format"` // csv | json | xlsx
	Path   string `json:"path"`   // chemin de destination choisi par l'utilisateur
}

// ImportRequest import d'un fichier plat dans une table.
type ImportRequest struct {
	Table  string `json:"table"`
	Format string `json:"format"`
	Path   string `json:"path"`
}

// SkippedRow ligne ignorée pendant un import, avec sa raison.
type SkippedRow struct {
	Row    int    `json:"row"` // index de ligne (1 = première ligne de données)
	Reason string `json:"reason"`
}

// ImportSummary résultat structuré d'un import : l'opération réussit même si
// des lignes sont ignorées, mais l'échec partiel reste observable.
type ImportSummary struct {
	Table    string       `json:"table"`
	Imported int          `json:"imported"`
	Skipped  []SkippedRow `json:"skipped"`
}

// BackupRequest sauvegarde du fichier de base vers une destination.
type BackupRequest struct {
	Path string `json:"path"` // vide = backup-<date ISO>.sqlite dans le dossier courant
}

// BackupResponse artefact produit.
type BackupResponse struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}
