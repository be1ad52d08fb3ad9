package internal

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var c *config

const (
	RunAddress       = "RUN_ADDRESS"
	DatabaseURI      = "DATABASE_URI"
	APIAddress       = "API_ADDRESS"
	APISecret        = "API_SECRET"
	APISignAddress   = "API_SIGN_ADDRESS"
	NodeRPCAddress   = "NODE_RPC_ADDRESS"
	NodeRPCUser      = "NODE_RPC_USER"
	NodeRPCPassword  = "NODE_RPC_PASSWORD"
	LiquidityAddress = "LIQUIDITY_ADDRESS"
	DepositAddress   = "DEPOSIT_ADDRESS"
	IssuerAddress    = "ISSUER_ADDRESS"
	Token            = "TOKEN"
	TelegramToken    = "TELEGRAM_TOKEN"
	TelegramChatID   = "TELEGRAM_CHAT_ID"
)

const (
	defaultRunAddress      = "localhost:8080"
	defaultDatabaseURI     = "host=localhost port=5432 user=postgres password=12345 sslmode=disable"
	defaultAPIAddress      = "http://localhost:3000/v1"
	defaultNodeRPCAddress  = "http://localhost:8554"
	defaultToken           = "DFI"
	defaultCheckInterval   = time.Minute
	defaultReconcile       = 5 * time.Minute
	defaultStaleAfter      = 24 * time.Hour
	defaultShutdownTimeout = 30 * time.Second
)

type config struct {
	RunAddress       string
	DatabaseURI      string
	APIAddress       string
	APISecret        string
	APISignAddress   string
	NodeRPCAddress   string
	NodeRPCUser      string
	NodeRPCPassword  string
	LiquidityAddress string
	DepositAddress   string
	IssuerAddress    string
	Token            string
	TelegramToken    string
	TelegramChatID   string

	CheckInterval     time.Duration
	ReconcileInterval time.Duration
	StaleAfter        time.Duration
	ShutdownTimeout   time.Duration
}

func NewConfig() *config {
	_ = godotenv.Load()

	c = new(config)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultDatabaseURI), "postgres connection path")
	flag.StringVar(&c.APIAddress, "api", setEnvOrDefault(APIAddress, defaultAPIAddress), "business API base address")
	flag.StringVar(&c.APISecret, "secret", setEnvOrDefault(APISecret, ""), "business API signing secret")
	flag.StringVar(&c.APISignAddress, "sign-address", setEnvOrDefault(APISignAddress, ""), "address claim for API tokens")
	flag.StringVar(&c.NodeRPCAddress, "rpc", setEnvOrDefault(NodeRPCAddress, defaultNodeRPCAddress), "blockchain node rpc address")
	flag.StringVar(&c.NodeRPCUser, "rpc-user", setEnvOrDefault(NodeRPCUser, ""), "blockchain node rpc user")
	flag.StringVar(&c.NodeRPCPassword, "rpc-password", setEnvOrDefault(NodeRPCPassword, ""), "blockchain node rpc password")
	flag.StringVar(&c.LiquidityAddress, "liquidity", setEnvOrDefault(LiquidityAddress, ""), "liquidity address of the staking pool")
	flag.StringVar(&c.DepositAddress, "deposit", setEnvOrDefault(DepositAddress, ""), "deposit address of the staking pool")
	flag.StringVar(&c.IssuerAddress, "issuer", setEnvOrDefault(IssuerAddress, ""), "address expected to sign open transactions")
	flag.StringVar(&c.Token, "token", setEnvOrDefault(Token, defaultToken), "token handled by this instance")
	flag.StringVar(&c.TelegramToken, "tg-token", setEnvOrDefault(TelegramToken, ""), "telegram bot token for operator alerts")
	flag.StringVar(&c.TelegramChatID, "tg-chat", setEnvOrDefault(TelegramChatID, ""), "telegram chat id for operator alerts")

	flag.DurationVar(&c.CheckInterval, "check-interval", defaultCheckInterval, "withdrawal check interval")
	flag.DurationVar(&c.ReconcileInterval, "reconcile-interval", defaultReconcile, "reservation reconcile interval")
	flag.DurationVar(&c.StaleAfter, "stale-after", defaultStaleAfter, "age after which an unconfirmed reservation is alerted")
	flag.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", defaultShutdownTimeout, "grace period for in-flight runs on shutdown")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
