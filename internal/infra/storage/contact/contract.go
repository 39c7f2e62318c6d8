package contact

import (
	"github.com/m04kA/SMC-DentalBooking/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
