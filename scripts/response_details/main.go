// Command response_details prints the review and PDF metadata for one
// survey response, identified by its legacy ID argument.
//
//	go run ./scripts/response_details 001
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"hoaportal_backend/internals/configs"
	database "hoaportal_backend/internals/databases"
	responseModel "hoaportal_backend/internals/features/surveys/response/model"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: response_details <response_id>")
	}
	id := os.Args[1]

	configs.LoadEnv()
	database.ConnectDB()

	var resp responseModel.ResponseModel
	err := database.DB.First(&resp, "response_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("[ERROR] response %s not found", id)
	}
	if err != nil {
		log.Fatalf("[ERROR] fetching response %s: %v", id, err)
	}

	fmt.Printf("Response %s\n", resp.ResponseID)
	fmt.Printf("  name:            %s\n", deref(resp.Name))
	fmt.Printf("  address:         %s\n", deref(resp.Address))
	fmt.Printf("  review_status:   %s\n", deref(resp.ReviewStatus))
	fmt.Printf("  reviewed_by:     %s\n", deref(resp.ReviewedBy))
	if resp.ReviewedAt != nil {
		fmt.Printf("  reviewed_at:     %s\n", resp.ReviewedAt.Format("2006-01-02 15:04:05 MST"))
	} else {
		fmt.Printf("  reviewed_at:     -\n")
	}
	fmt.Printf("  pdf_file_path:   %s\n", deref(resp.PDFFilePath))
	fmt.Printf("  pdf_storage_url: %s\n", deref(resp.PDFStorageURL))
	if resp.PDFUploadedAt != nil {
		fmt.Printf("  pdf_uploaded_at: %s\n", resp.PDFUploadedAt.Format("2006-01-02 15:04:05 MST"))
	} else {
		fmt.Printf("  pdf_uploaded_at: -\n")
	}
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
