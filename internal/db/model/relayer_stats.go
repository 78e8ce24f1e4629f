package model

const RelayerStatsCollection = "relayer_stats"

type RelayerStatsDocument struct {
	Relayer        string `bson:"_id"` // Primary key
	Executions     uint64 `bson:"executions"`
	TotalVolume    string `bson:"total_volume"`
	TotalFees      string `bson:"total_fees"`
	LastExecutedAt int64  `bson:"last_executed_at"`
}
