package lf

import "go.uber.org/zap"

const (
	FieldModule    = "module"
	FieldDriver    = "driver"
	FieldEntity    = "entity"
	FieldRecordID  = "record_id"
	FieldRequestID = "request_id"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func Driver(driver string) zap.Field {
	return zap.String(FieldDriver, driver)
}

func Entity(kind string) zap.Field {
	return zap.String(FieldEntity, kind)
}

func RecordID(ID int) zap.Field {
	return zap.Int(FieldRecordID, ID)
}

func RequestID(ID string) zap.Field {
	return zap.String(FieldRequestID, ID)
}
