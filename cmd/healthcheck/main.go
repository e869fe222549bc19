// Command healthcheck queries the /healthz endpoint of a running server and
// exits 0 when it reports SERVING.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MKhiriev/go-crm-front/internal/utils"
)

func main() {
	address := flag.String("a", "http://localhost:8080", "base URL of the server")
	timeout := flag.Duration("t", 3*time.Second, "request timeout")
	flag.Parse()

	os.Exit(checkHealth(*address, *timeout))
}

func checkHealth(address string, timeout time.Duration) int {
	resp, err := utils.NewHTTPClient(address, timeout).R().Get("/healthz")
	if err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck: %v\n", err)
		return 1
	}
	if resp.StatusCode() != http.StatusOK {
		fmt.Fprintf(os.Stderr, "healthcheck: %s %s\n", resp.Status(), resp.String())
		return 1
	}

	fmt.Println(resp.String())
	return 0
}
