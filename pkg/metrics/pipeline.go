package metrics

// PipelineStats captures record counts observed while building one report.
type PipelineStats struct {
	RecordsFetched   int `json:"recordsFetched"`
	RecordsKept      int `json:"recordsKept"`
	RecordsDiscarded int `json:"recordsDiscarded,omitempty"`
	ClustersBuilt    int `json:"clustersBuilt,omitempty"`
}

// IsZero reports whether no records were seen at all.
func (s PipelineStats) IsZero() bool {
	return s.RecordsFetched == 0 && s.RecordsKept == 0 && s.RecordsDiscarded == 0 && s.ClustersBuilt == 0
}
