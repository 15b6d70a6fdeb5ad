package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type productDef struct {
	name        string
	description string
	price       float64
	category    string
}

var seedProducts = []productDef{
	// Speakers
	{"Polk Monitor XT70", "Floor-standing tower speaker, Hi-Res certified, Dolby Atmos ready", 25000, "Speakers"},
	{"Klipsch RP-8000F II", "Reference Premiere floor-standing speaker with Tractrix horn", 65000, "Speakers"},
	{"Wharfedale Diamond 12.3", "3-way floor-standing speaker, walnut finish", 48000, "Speakers"},
	// In-Wall Speakers
	{"Polk RC85i", "2-way in-wall speaker pair, moisture resistant", 18000, "In-Wall Speakers"},
	{"Klipsch R-5502-W II", "In-wall speaker with dual 5.25in woofers", 32000, "In-Wall Speakers"},
	// SubWoofer
	{"SVS PB-1000 Pro", "12in ported subwoofer with smartphone DSP control", 62000, "SubWoofer"},
	{"Klipsch R-120SW", "12in front-firing subwoofer, 400W peak", 35000, "SubWoofer"},
	// AV Receiver
	{"Denon AVR-X2800H", "7.2ch 8K AV receiver with Dolby Atmos and HEOS", 78000, "AV Receiver"},
	{"Marantz Cinema 60", "7.2ch slim AV receiver, 100W per channel", 125000, "AV Receiver"},
	// Projectors
	{"BenQ W2700", "4K HDR home cinema projector, 95% DCI-P3", 139000, "Projectors"},
	{"Epson EH-TW7100", "4K PRO-UHD projector, 3000 lumens", 165000, "Projectors"},
	// Screen
	{"Elite Screens Sable Frame 120", "120in fixed frame projection screen, 16:9", 28000, "Screen"},
	{"Liberty Grandview 150", "150in motorised projection screen with remote", 55000, "Screen"},
}

// Seed populates the products collection with the home-theatre catalog.
// Safe to call on every startup: it returns early if any product
// records already exist.
func Seed(app *pocketbase.PocketBase) error {
	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}
	existing, err := app.FindAllRecords(productsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query products: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: products collection is empty – inserting seed data …")

	for _, def := range seedProducts {
		record := core.NewRecord(productsCol)
		record.Set("name", def.name)
		record.Set("description", def.description)
		record.Set("price", def.price)
		record.Set("category", def.category)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save product %q: %w", def.name, err)
		}
	}

	log.Printf("seed: inserted %d products", len(seedProducts))
	return nil
}
