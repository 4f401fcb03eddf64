package data

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewCmd - импорт, выгрузка, печать и очистка журнала
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Импорт, выгрузка и печать журнала",
	}

	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newPrintCmd())
	cmd.AddCommand(newClearCmd())

	return cmd
}

// writeOutput пишет данные в файл или, если путь пуст, в вывод команды
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Сохранено в %s (%d байт)\n", path, len(data))
	return nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла: %w", err)
	}
	return data, nil
}
