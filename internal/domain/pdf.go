package domain

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	mathUtil "github.com/pkg/math"
	"github.com/tavernsheet/backend/internal/model"
)

const pdfDescriptionLimit = 160

// renderCharacterSheetPDF lays out a one-page character sheet.
func renderCharacterSheetPDF(character model.Character) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, character.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	background := ""
	if character.Background != nil {
		background = character.Background.Name
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Level %d %s %s", character.Level, character.Race.Name, character.Class.Name),
		"", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Alignment: %s    Background: %s    Age: %d",
		character.Alignment, background, character.Age), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Abilities", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	abilities := []struct {
		name  string
		score int
	}{
		{"Strength", character.Strength},
		{"Dexterity", character.Dexterity},
		{"Constitution", character.Constitution},
		{"Intelligence", character.Intelligence},
		{"Wisdom", character.Wisdom},
		{"Charisma", character.Charisma},
	}
	for _, ability := range abilities {
		pdf.CellFormat(31, 6, fmt.Sprintf("%s %d", ability.name, ability.score), "", 0, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("HP: %d    Death Saves: %d successes / %d failures",
		character.HP, character.DeathSaveSuccesses, character.DeathSaveFailures), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Coins: %d cp, %d sp, %d gp, %d pp",
		character.CopperPieces, character.SilverPieces, character.GoldPieces, character.PlatinumPieces),
		"", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSection(pdf, "Proficiencies", func() []string {
		names := []string{}
		for _, skill := range character.Proficiencies {
			names = append(names, skill.Name)
		}
		return names
	}())

	writeSection(pdf, "Feats", func() []string {
		names := []string{}
		for _, feat := range character.Feats {
			names = append(names, feat.Name)
		}
		return names
	}())

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Spells", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, spell := range character.Spells {
		desc := spell.Description
		desc = desc[:mathUtil.MinInt(len(desc), pdfDescriptionLimit)]
		pdf.MultiCell(0, 5, fmt.Sprintf("%s (level %d, %s) %s", spell.Name, spell.Level, spell.School, desc),
			"", "L", false)
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Inventory", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range character.Inventory {
		line := item.Name
		if item.DamageDice != "" {
			line = fmt.Sprintf("%s (%s %s)", item.Name, item.DamageDice, item.DamageType)
		} else if item.ArmorClass > 0 {
			line = fmt.Sprintf("%s (AC %d)", item.Name, item.ArmorClass)
		}
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeSection(pdf *gofpdf.Fpdf, title string, names []string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, name := range names {
		pdf.CellFormat(0, 5, name, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
}
