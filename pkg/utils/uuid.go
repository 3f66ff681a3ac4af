package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters         = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	submissionIDLength = 10
)

// GenerateID gera o identificador de uma submissão
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, submissionIDLength)
}
