package model

const SelectorLatest = "latest"

type GetLatestUpdateRequest struct {
	Product string
	Version string `query:"version"`
}
