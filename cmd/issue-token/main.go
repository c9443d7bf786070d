// Утилита выпуска access токена для локальной разработки.
// В проде токены выдаёт внешний сервис идентификации с тем же секретом.
package main

import (
	"filelink/config"
	"filelink/internal/security"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	configPath := flag.String("config", config.ConfigPath(), "путь к config.yaml")
	userUUID := flag.String("user", "", "UUID пользователя")
	flag.Parse()

	if *userUUID == "" {
		fmt.Fprintln(os.Stderr, "использование: issue-token -user <uuid> [-config config.yaml]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	token, err := security.NewJWTService(&cfg.JWT).GenerateAccessToken(*userUUID)
	if err != nil {
		log.Fatalf("Ошибка выпуска токена: %v", err)
	}

	fmt.Println(token)
}
