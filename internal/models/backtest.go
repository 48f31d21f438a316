package models

// BacktestConfig — полный payload для POST /trade. Все поля отправляются всегда,
// даже если выбранная стратегия их не использует (бэкенд сам игнорирует лишнее).
type BacktestConfig struct {
	Exchange      string  `json:"exchange"`
	Symbol        string  `json:"symbol"`
	Username      string  `json:"username"`
	RSIPeriod     int     `json:"rsi_period"`
	BuyThreshold  float64 `json:"buy_threshold"`
	SellThreshold float64 `json:"sell_threshold"`
	TradeType     string  `json:"trade_type"`
	Strategy      string  `json:"strategy"`
	MAPeriod      int     `json:"ma_period"`
	UseScratchRSI bool    `json:"use_scratch_rsi"`
	UseCSV        bool    `json:"use_csv"`
}

// Trade — одна сделка из ответа бэкенда. EntryRSI/ExitRSI опциональны:
// не-RSI стратегии их не присылают, поэтому указатели, а не пустые строки.
type Trade struct {
	Symbol     string   `json:"symbol"`
	TradeType  string   `json:"trade_type"`
	EntryTime  string   `json:"entry_time"`
	EntryPrice float64  `json:"entry_price"`
	EntryRSI   *float64 `json:"entry_rsi,omitempty"`
	ExitTime   string   `json:"exit_time"`
	ExitPrice  float64  `json:"exit_price"`
	ExitRSI    *float64 `json:"exit_rsi,omitempty"`
	ProfitPct  float64  `json:"profit_pct"`
}

// BacktestSummary — агрегаты, считает бэкенд. Win-rate здесь не храним,
// это производная величина презентационного слоя (см. internal/report).
type BacktestSummary struct {
	TotalTrades       int     `json:"total_trades"`
	WinningTrades     int     `json:"winning_trades"`
	TotalProfitPct    float64 `json:"total_profit_pct"`
	AvgProfitPerTrade float64 `json:"avg_profit_per_trade"`
}

// HistoricalPoint — строка исторических данных; набор колонок определяет бэкенд.
type HistoricalPoint map[string]any

// BacktestResult — конверт ответа POST /trade целиком.
type BacktestResult struct {
	Trades  []Trade           `json:"trades"`
	Data    []HistoricalPoint `json:"data"`
	Plot    string            `json:"plot"` // base64 PNG, может быть пустым
	Summary BacktestSummary   `json:"summary"`
}
