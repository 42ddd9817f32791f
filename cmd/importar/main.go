package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/KromaEnergia/consultores-cvm/internal/config"
	"github.com/KromaEnergia/consultores-cvm/internal/importacao"
	"github.com/KromaEnergia/consultores-cvm/internal/utils/db"
	"github.com/spf13/cobra"
)

const exemploEnv = `
Exemplo de .env:
DB_HOST=db.xxx.supabase.co
DB_PORT=5432
DB_NAME=postgres
DB_USERNAME=postgres
DB_PASSWORD=sua-senha
`

func main() {
	if err := novoComando().Execute(); err != nil {
		os.Exit(1)
	}
}

func novoComando() *cobra.Command {
	var (
		caminho    string
		confirmado bool
	)

	cmd := &cobra.Command{
		Use:          "importar",
		Short:        "Importa o cadastro de consultores PF da CVM para consultores_pf",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validar(); err != nil {
				if errors.Is(err, config.ErrCredenciaisAusentes) {
					fmt.Fprintln(cmd.OutOrStdout(), "ERRO: Configure DB_USERNAME e DB_PASSWORD no arquivo .env")
					fmt.Fprint(cmd.OutOrStdout(), exemploEnv)
				}
				return err
			}

			database, err := db.ConnectDataBase(cfg)
			if err != nil {
				return err
			}

			imp := importacao.NewImportador(database, cmd.InOrStdin(), cmd.OutOrStdout())
			if err := imp.Executar(cmd.Context(), caminho, confirmado); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "\nErro na importação.")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&caminho, "csv", "cad_consultor_vlmob_pf.csv", "caminho do CSV da CVM (latin-1, separado por ';')")
	cmd.Flags().BoolVar(&confirmado, "sim", false, "limpa a tabela sem perguntar se ela já tiver dados")
	return cmd
}
