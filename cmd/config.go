package cmd

type Config struct {
	HTTPPort         string
	StoreFile        string
	ReceiptsDir      string
	OrderLogFile     string
	BoardRefreshSpec string
}
