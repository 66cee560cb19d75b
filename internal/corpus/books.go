// Package corpus owns the built-in statute books: the fixed registry, the
// parsed-section cache, and the source-file watcher.
package corpus

import "github.com/kornthip/matra/internal/models"

// Books is the fixed master list of built-in statute books. Slice order is
// the display/priority order used when sorting the assembled collection.
var Books = []models.Book{
	{
		ID:           "crim",
		Name:         "ประมวลกฎหมายอาญา",
		Abbreviation: "ป.อ.",
		Description:  "ความผิดและโทษทางอาญา",
		SourceURL:    "https://searchlaw.ocs.go.th/council-of-state/#/public/doc/cGFqZ1lmZFpjSzUyM3BFY0Z2TVJ0Zz09",
		LastUpdated:  "10 ก.พ. 2567",
		SourceFile:   "crim.txt",
	},
	{
		ID:           "civil",
		Name:         "ประมวลกฎหมายแพ่งและพาณิชย์",
		Abbreviation: "ป.พ.พ.",
		Description:  "นิติกรรม สัญญา หนี้ เอกเทศสัญญา ทรัพย์สิน ครอบครัว มรดก",
		SourceURL:    "https://searchlaw.ocs.go.th/council-of-state/#/public/doc/Qko1NGNVa1FhMG9hTTNGcU9sTGxydz09",
		LastUpdated:  "10 ก.พ. 2567",
		SourceFile:   "civil.txt",
	},
	{
		ID:           "civil_proc",
		Name:         "ประมวลกฎหมายวิธีพิจารณาความแพ่ง",
		Abbreviation: "ป.วิ.พ.",
		Description:  "กระบวนพิจารณาคดีแพ่ง",
		SourceURL:    "https://searchlaw.ocs.go.th/council-of-state/#/public/doc/VjZQcUR4VG1iVHZGS09TMUMvY2Vsdz09",
		LastUpdated:  "10 ก.พ. 2567",
		SourceFile:   "civil_proc.txt",
	},
	{
		ID:           "crim_proc",
		Name:         "ประมวลกฎหมายวิธีพิจารณาความอาญา",
		Abbreviation: "ป.วิ.อ.",
		Description:  "กระบวนพิจารณาคดีอาญา",
		SourceURL:    "https://searchlaw.ocs.go.th/council-of-state/#/public/doc/UVdzUTNzUFZlT3VBOEw2allVWTZxZz09",
		LastUpdated:  "10 ก.พ. 2567",
		SourceFile:   "crim_proc.txt",
	},
	{
		ID:           "const",
		Name:         "รัฐธรรมนูญแห่งราชอาณาจักรไทย",
		Abbreviation: "รธน.",
		Description:  "กฎหมายสูงสุดของประเทศ",
		SourceURL:    "https://searchlaw.ocs.go.th/council-of-state/#/public/doc/VG9mbS9RRXZhdjNGYy9Xcm5LTjd1Zz09",
		LastUpdated:  "10 ก.พ. 2567",
		SourceFile:   "const.txt",
	},
	{
		ID:           "bankruptcy",
		Name:         "พระราชบัญญัติล้มละลาย",
		Abbreviation: "พ.ร.บ. ล้มละลาย",
		Description:  "กระบวนการล้มละลายและการฟื้นฟูกิจการ",
		SourceURL:    "https://searchlaw.ocs.go.th/council-of-state/#/public/doc/dWNDc0pxS3NteHBmaHJoTE9KakhKdz09",
		LastUpdated:  "10 ก.พ. 2567",
		SourceFile:   "bankruptcy.txt",
	},
	{
		ID:           "kwaeng",
		Name:         "พ.ร.บ. จัดตั้งศาลแขวงและวิธีพิจารณาความอาญาในศาลแขวง",
		Abbreviation: "ศาลแขวง",
		Description:  "กระบวนพิจารณาคดีอาญาศาลแขวง",
		SourceURL:    "https://searchlaw.ocs.go.th/council-of-state/#/public/doc/SUlSbFpqUG95RlJ6RDd2c3BKSXBWdz09",
		LastUpdated:  "10 ก.พ. 2567",
		SourceFile:   "kwaeng.txt",
	},
	{
		ID:           "court_const",
		Name:         "พระธรรมนูญศาลยุติธรรม",
		Abbreviation: "พระธรรมนูญ",
		Description:  "เขตอำนาจศาลและผู้พิพากษา",
		SourceURL:    "https://searchlaw.ocs.go.th/council-of-state/#/public/doc/b2oxcEd6U0M2bzhQVktyQmFRaEVLdz09",
		LastUpdated:  "10 ก.พ. 2567",
		SourceFile:   "court_const.txt",
	},
}

// BookByID returns the registry entry for id.
func BookByID(id string) (models.Book, bool) {
	for _, b := range Books {
		if b.ID == id {
			return b, true
		}
	}
	return models.Book{}, false
}

// bookBySourceFile maps a corpus file name back to its book.
func bookBySourceFile(name string) (models.Book, bool) {
	for _, b := range Books {
		if b.SourceFile == name {
			return b, true
		}
	}
	return models.Book{}, false
}

// PriorityIndex returns the position of a book in the master list, or -1
// for unknown IDs.
func PriorityIndex(id string) int {
	for i, b := range Books {
		if b.ID == id {
			return i
		}
	}
	return -1
}
