package recipes

import (
	"bytes"
	"fmt"
	"strings"

	"cookbook/models"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// RenderCard lays the recipe out on one A4 page with a QR code linking to link.
func RenderCard(recipe *models.Recipe, link string) ([]byte, error) {
	qrPNG, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(recipe.Title, true)
	pdf.SetAuthor(recipe.Author, true)
	pdf.AddPage()

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 10, 35, 35, false, imageOpts, 0, link)

	pdf.SetFont("Arial", "B", 18)
	pdf.MultiCell(145, 9, tr(recipe.Title), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(145, 5, tr(summaryLine(recipe)), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(145, 6, tr(recipe.Description), "", "L", false)
	pdf.SetY(50)

	if len(recipe.Ingredients) > 0 {
		section(pdf, "Ingredients")
		pdf.SetFont("Arial", "", 11)
		for _, ing := range recipe.Ingredients {
			pdf.MultiCell(0, 6, tr("- "+ingredientLine(ing)), "", "L", false)
		}
		pdf.Ln(3)
	}

	if len(recipe.Steps) > 0 {
		section(pdf, "Steps")
		for _, step := range recipe.Steps {
			pdf.SetFont("Arial", "B", 11)
			pdf.CellFormat(10, 6, fmt.Sprintf("%d.", step.Order), "", 0, "L", false, 0, "")
			pdf.SetFont("Arial", "", 11)
			pdf.MultiCell(0, 6, tr(stepLine(step)), "", "L", false)
		}
		pdf.Ln(3)
	}

	if n := recipe.Nutrition; n != nil {
		section(pdf, "Nutrition")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, nutritionLine(n), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render recipe card: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func summaryLine(r *models.Recipe) string {
	parts := []string{"Difficulty: " + string(r.Difficulty)}
	if r.TotalTime != nil {
		parts = append(parts, fmt.Sprintf("Total: %d min", *r.TotalTime))
	} else if r.CookingTime != nil {
		parts = append(parts, fmt.Sprintf("Cooking: %d min", *r.CookingTime))
	}
	if r.Yield != nil {
		parts = append(parts, fmt.Sprintf("Serves %d", *r.Yield))
	}
	if len(r.Diets) > 0 {
		parts = append(parts, strings.Join(r.Diets, ", "))
	}
	if len(r.Allergens) > 0 {
		parts = append(parts, "Contains: "+strings.Join(r.Allergens, ", "))
	}
	return strings.Join(parts, "  |  ")
}

func ingredientLine(ing models.RecipeIngredient) string {
	name := ing.Name
	if name == "" {
		name = "ingredient " + ing.ID
	}
	return strings.TrimSpace(fmt.Sprintf("%g %s %s", ing.Quantity, ing.Unit, name))
}

func stepLine(step models.RecipeStep) string {
	line := step.Instructions
	var extras []string
	if step.Duration != nil {
		extras = append(extras, fmt.Sprintf("%d min", *step.Duration))
	}
	if step.Temperature != nil {
		extras = append(extras, fmt.Sprintf("%g °C", *step.Temperature))
	}
	if len(extras) > 0 {
		line += " (" + strings.Join(extras, ", ") + ")"
	}
	return line
}

func nutritionLine(n *models.Nutrition) string {
	var parts []string
	add := func(label string, v *float64, unit string) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s %g%s", label, *v, unit))
		}
	}
	add("Calories", n.Calories, " kcal")
	add("Proteins", n.Proteins, " g")
	add("Carbs", n.Carbs, " g")
	add("Fats", n.Fats, " g")
	return strings.Join(parts, "  |  ")
}
