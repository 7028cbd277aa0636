// Command importxlsx migrates a legacy client roster workbook into the
// client directory tab. The workbook's first sheet must use the
// directory column order (name, phone, dob, email, linkedin email,
// linkedin password, gmail access/password/recovery, location, ...);
// missing trailing columns are padded. Rows without a name are skipped.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"onboarding-backend/pkg/clients/sheets"
	"onboarding-backend/pkg/config"
	"onboarding-backend/pkg/logger"
	"onboarding-backend/pkg/models"
)

func main() {
	file := flag.String("file", "existing-data.xlsx", "path to the legacy roster workbook")
	hasHeader := flag.Bool("header", true, "whether the first row is a header row")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}
	cfg := config.LoadConfig()
	zlog := logger.New(cfg.Env)
	defer zlog.Sync()

	key, err := os.ReadFile(cfg.ServiceAccountFile)
	if err != nil {
		zlog.Fatal("error reading service account key", zap.Error(err))
	}
	client, err := sheets.NewClient(key, cfg.SpreadsheetID)
	if err != nil {
		zlog.Fatal("error creating sheets client", zap.Error(err))
	}

	wb, err := excelize.OpenFile(*file)
	if err != nil {
		zlog.Fatal("error opening workbook", zap.String("file", *file), zap.Error(err))
	}
	defer wb.Close()

	sheetName := wb.GetSheetName(0)
	rows, err := wb.GetRows(sheetName)
	if err != nil {
		zlog.Fatal("error reading workbook sheet", zap.String("sheet", sheetName), zap.Error(err))
	}
	zlog.Info("workbook opened", zap.String("sheet", sheetName), zap.Int("rows", len(rows)))

	if *hasHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	imported := 0
	today := time.Now().Format("1/2/2006")
	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		out := make([]interface{}, len(models.DirectoryHeaders))
		for i := range out {
			if i < len(row) {
				out[i] = row[i]
			} else {
				out[i] = ""
			}
		}
		// Status and Date Added default for migrated accounts.
		if out[14] == "" {
			out[14] = "Active"
		}
		if out[15] == "" {
			out[15] = today
		}

		if err := client.AppendRow(cfg.DirectoryTab, out); err != nil {
			zlog.Error("error appending roster row", zap.String("name", row[0]), zap.Error(err))
			continue
		}
		imported++
	}

	zlog.Info("import complete", zap.Int("imported", imported), zap.Int("scanned", len(rows)))
}
