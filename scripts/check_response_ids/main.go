// Command check_response_ids lists every survey response ID and reports the
// ones that do not match the legacy zero-padded format (e.g. "001").
// It only reports; it never rewrites IDs.
package main

import (
	"fmt"
	"log"
	"regexp"

	"hoaportal_backend/internals/configs"
	database "hoaportal_backend/internals/databases"
)

var legacyIDPattern = regexp.MustCompile(`^\d{3}$`)

func main() {
	configs.LoadEnv()
	database.ConnectDB()

	var ids []string
	if err := database.DB.
		Table("responses").
		Order("response_id").
		Pluck("response_id", &ids).Error; err != nil {
		log.Fatalf("[ERROR] listing response IDs: %v", err)
	}

	fmt.Printf("Found %d responses\n", len(ids))
	irregular := 0
	for _, id := range ids {
		if legacyIDPattern.MatchString(id) {
			fmt.Printf("  %s  ok\n", id)
		} else {
			irregular++
			fmt.Printf("  %s  ⚠️ non-standard format\n", id)
		}
	}

	if irregular == 0 {
		fmt.Println("All response IDs follow the legacy format ✅")
	} else {
		fmt.Printf("%d response IDs need attention ⚠️\n", irregular)
	}
}
