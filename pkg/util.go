package pkg

import (
	"log"
	"os"
)

// InitLog sends the standard logger to dest, since the terminal belongs to
// the game, and returns it.
func InitLog(dest, prefix string) *log.Logger {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)

	return log.Default()
}
