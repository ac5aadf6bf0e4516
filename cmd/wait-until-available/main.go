package main

import (
	"fmt"
	"net/http"
	"time"

	"gitlab.com/dirk.krummacker/contact-book/internal/config"
)

// Usage example on the command line:
// > PORT=8080 go run main.go
func main() {
	url := fmt.Sprintf("http://localhost:%s/contacts", config.GetEnv("PORT", "8080"))
	totalWaitTime := 0
	for {
		res, err := http.Get(url)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				fmt.Println(res.Status)
				break
			}
			fmt.Println(res.Status)
		} else {
			fmt.Println(err)
		}
		totalWaitTime += 5
		fmt.Printf("Waiting %d seconds", totalWaitTime)
		fmt.Println()
		time.Sleep(5 * time.Second)
	}
}
