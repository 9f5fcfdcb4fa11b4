package pkg

import (
	"io"
	"log"
	"os"
)

// InitLog points the standard logger at dest. The game owns the terminal, so
// an empty dest discards log output instead of writing to stderr.
func InitLog(dest, prefix string) (io.Closer, error) {
	log.SetPrefix(prefix)
	if dest == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}
