package app

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/curatednews/digest/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	s := MustGetEnvAsString(ctx, name)

	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as int",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as int [%s]: %s", name, s))
	}

	return v
}

func GetEnvAsStringWithDefault(name, fallback string) string {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return fallback
	}
	return s
}

func GetEnvAsBooleanWithDefault(ctx context.Context, name string, fallback bool) bool {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return fallback
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as boolean",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as boolean [%s]: %s", name, s))
	}

	return v
}
