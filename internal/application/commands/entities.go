package commands

import (
	"lifememory/internal/domain"
	"lifememory/internal/ports"
)

// buildEntityIndex gathers the entity index inputs (NOW note text plus the
// note names of each category folder) from the repository and hands them to
// the domain builder. Missing sources degrade to a smaller index.
func buildEntityIndex(repo ports.VaultRepository) ([]string, error) {
	nowText, err := repo.ReadNowNote()
	if err != nil {
		return nil, err
	}

	categoryNotes := make([][]string, 0, len(domain.CategoryFolders))
	for _, folder := range domain.CategoryFolders {
		names, err := repo.ListCategoryNotes(folder)
		if err != nil {
			return nil, err
		}
		categoryNotes = append(categoryNotes, names)
	}

	return domain.BuildEntityIndex(nowText, categoryNotes), nil
}
