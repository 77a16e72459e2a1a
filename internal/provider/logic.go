package provider

import (
	"github.com/mauops/mau-backend/internal/logic"
	"github.com/google/wire"
)

var LogicSet = wire.NewSet(
	logic.NewResolverLogic,
)
