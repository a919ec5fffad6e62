package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"

	"github.com/steemit/rc-engine-go/config"
	"github.com/steemit/rc-engine-go/core"
	"github.com/steemit/rc-engine-go/data/transaction"
	"github.com/steemit/rc-engine-go/process/resourcecost"
)

var rcDemoHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}{{end}}
`

var (
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "The resource parameters definition file",
		Value: "./config/resources.toml",
	}
	poolFile = cli.StringFlag{
		Name:  "pool",
		Usage: "The initial resource pool snapshot file",
		Value: "./config/pool.json",
	}
	transactionsFile = cli.StringFlag{
		Name:  "transactions",
		Usage: "The sample transactions file",
		Value: "./config/transactions.json",
	}
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "The logging level",
		Value: "*:INFO",
	}
)

const (
	// creditRegenWindowSeconds is the full regeneration window of an account's credits
	creditRegenWindowSeconds = 432000
	blockIntervalSeconds     = 3

	totalVestingShares    = "397114288290855167"
	totalVestingFundSteem = "196576920519"
)

var log = logger.GetOrCreate("rcdemo")

// demoTransaction pairs a sample transaction with its externally measured
// serialized byte length
type demoTransaction struct {
	Name           string                   `json:"name"`
	SerializedSize int64                    `json:"serialized_size"`
	Tx             *transaction.Transaction `json:"transaction"`
}

func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = rcDemoHelpTemplate
	app.Name = "Resource Credits Demo"
	app.Usage = "Prices sample transactions through the resource credit model and walks the pools across block boundaries"
	app.Flags = []cli.Flag{configFile, poolFile, transactionsFile, logLevel}
	app.Authors = []cli.Author{
		{
			Name:  "The Steemit team",
			Email: "contact@steemit.com",
		},
	}

	app.Action = func(c *cli.Context) error {
		return startDemo(c)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startDemo(ctx *cli.Context) error {
	err := logger.SetLogLevel(ctx.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	resourcesConfig := &config.ResourcesConfig{}
	err = core.LoadTomlFile(resourcesConfig, ctx.GlobalString(configFile.Name))
	if err != nil {
		return fmt.Errorf("cannot load resources config: %w", err)
	}
	log.Info("loaded resource parameters", "file", ctx.GlobalString(configFile.Name))

	pool := resourcecost.PoolState{}
	err = core.LoadJsonFile(&pool, ctx.GlobalString(poolFile.Name))
	if err != nil {
		return fmt.Errorf("cannot load pool snapshot: %w", err)
	}

	demoTransactions := make([]demoTransaction, 0)
	err = core.LoadJsonFile(&demoTransactions, ctx.GlobalString(transactionsFile.Name))
	if err != nil {
		return fmt.Errorf("cannot load sample transactions: %w", err)
	}

	model, err := resourcecost.NewResourceCreditModel(resourcecost.ArgsResourceCreditModel{
		ResourcesConfig: resourcesConfig,
		Pool:            pool,
		RegenRate:       deriveRegenRate(),
	})
	if err != nil {
		return err
	}
	log.Info("created resource credit model", "regen rate", model.RegenRate().String())

	for _, demoTx := range demoTransactions {
		err = priceAndApply(model, &demoTx)
		if err != nil {
			return err
		}
	}

	return printPool(model.Pool())
}

// deriveRegenRate returns the credit regeneration rate per block: the total
// vesting share supply spread over one full regeneration window
func deriveRegenRate() *big.Int {
	vestingShares, _ := big.NewInt(0).SetString(totalVestingShares, 10)
	blocksPerWindow := big.NewInt(creditRegenWindowSeconds / blockIntervalSeconds)

	return vestingShares.Quo(vestingShares, blocksPerWindow)
}

// priceAndApply prices one sample transaction against the current pool, prints
// the outcome and advances the pool across one block boundary
func priceAndApply(model resourcecost.TransactionCostHandler, demoTx *demoTransaction) error {
	if check.IfNil(model) {
		return resourcecost.ErrNilTransactionCostHandler
	}

	cost, err := model.GetTransactionCost(demoTx.Tx, demoTx.SerializedSize)
	if err != nil {
		return fmt.Errorf("cannot price transaction %s: %w", demoTx.Name, err)
	}

	encoded, err := json.MarshalIndent(cost, "", "  ")
	if err != nil {
		return err
	}

	log.Info("priced transaction",
		"name", demoTx.Name,
		"serialized size", demoTx.SerializedSize,
		"total cost", cost.Cost.Total().String(),
		"steem equivalent", fmt.Sprintf("%.3f", steemEquivalent(cost.Cost.Total())),
	)
	fmt.Println(string(encoded))

	dynamics, err := model.ApplyPoolDynamics(cost.Usage)
	if err != nil {
		return err
	}

	for rt := resourcecost.ResourceType(0); rt < resourcecost.NumResourceTypes; rt++ {
		log.Debug("pool dynamics",
			"resource", rt.String(),
			"budget", dynamics[rt].Budget.String(),
			"usage", dynamics[rt].Usage.String(),
			"decay", dynamics[rt].Decay.String(),
			"new pool", dynamics[rt].NewPool.String(),
		)
	}

	return nil
}

// steemEquivalent converts a credit cost into liquid tokens at the current
// vesting exchange rate, for display only
func steemEquivalent(cost *big.Int) float64 {
	fundSteem, _ := big.NewFloat(0).SetString(totalVestingFundSteem)
	vestingShares, _ := big.NewFloat(0).SetString(totalVestingShares)

	value := big.NewFloat(0).SetInt(cost)
	value.Mul(value, fundSteem)
	value.Quo(value, vestingShares)
	value.Quo(value, big.NewFloat(1000))

	result, _ := value.Float64()

	return result
}

func printPool(pool resourcecost.PoolState) error {
	encoded, err := json.MarshalIndent(pool, "", "  ")
	if err != nil {
		return err
	}

	log.Info("final pool snapshot")
	fmt.Println(string(encoded))

	return nil
}
