package util

import (
	"crypto/rand"
	"filelink/internal/model"
)

const slugAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// байты >= этого значения отбрасываются, иначе b % 62 даёт смещённое распределение
const slugRejectThreshold = 256 - 256%len(slugAlphabet)

// GenerateSlug : генерирует slug длиной model.SlugLength из 62-символьного алфавита
func GenerateSlug() (string, error) {
	return generateRandomToken(model.SlugLength)
}

// generateRandomToken : каждый символ выбирается независимо и равномерно
func generateRandomToken(length int) (string, error) {
	token := make([]byte, 0, length)
	buf := make([]byte, length*2)

	for len(token) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", LogError("[util] ошибка генерации slug", err)
		}
		for _, b := range buf {
			if int(b) >= slugRejectThreshold {
				continue
			}
			token = append(token, slugAlphabet[int(b)%len(slugAlphabet)])
			if len(token) == length {
				break
			}
		}
	}

	return string(token), nil
}
