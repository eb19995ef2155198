package appointment

import "github.com/m04kA/SMC-AppointmentService/pkg/txmanager"

// DBExecutor интерфейс для работы с БД (реализуется *sql.DB и *sql.Tx)
type DBExecutor = txmanager.DBExecutor
