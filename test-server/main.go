// Fake maclookup.app api for local development. Run it and point the
// lookup example at it with OUI_ENDPOINT=http://localhost:8080/v2/macs/
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
)

var port = os.Getenv("PORT")

var prefixes = map[string]string{
	"00000C": "Cisco Systems, Inc",
	"001A2B": "Ayecom Technology Co., Ltd.",
	"3C5AB4": "Google, Inc.",
}

func main() {
	if port == "" {
		port = "8080"
	}

	addr := ":" + port

	http.HandleFunc("/v2/macs/", func(w http.ResponseWriter, r *http.Request) {
		mac := strings.TrimPrefix(r.URL.Path, "/v2/macs/")

		fmt.Printf("received lookup: %s\n", mac)

		prefix := strings.ToUpper(strings.NewReplacer(":", "", "-", "", ".", "").Replace(mac))

		w.Header().Set("Content-Type", "application/json")

		if len(prefix) < 6 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success":   false,
				"error":     "Invalid MAC address",
				"errorCode": 101,
			})
			return
		}

		company, found := prefixes[prefix[:6]]

		body := map[string]interface{}{
			"success":   true,
			"found":     found,
			"macPrefix": prefix[:6],
		}

		if found {
			body["company"] = company
		}

		json.NewEncoder(w).Encode(body)
	})

	fmt.Printf("starting server: listening on %s\n", addr)
	http.ListenAndServe(addr, nil)
}
