package hmm

// Vendor payload shapes for the HMM gateway APIs. Every response wraps its
// records in a resultCode/resultData envelope.

type hmmScheduleResponse struct {
	ResultCode    string            `json:"resultCode"`
	ResultMessage string            `json:"resultMessage"`
	ResultData    []hmmScheduleItem `json:"resultData"`
}

type hmmScheduleItem struct {
	VVDCode         string `json:"vvdCode"`
	ServiceLaneName string `json:"serviceLaneName"`

	VesselName      string `json:"vesselName"`
	VesselIMONumber string `json:"vslImoNo"`
	VesselCallSign  string `json:"vslCallSign"`

	PortCode     string `json:"portCode"`
	PortName     string `json:"portName"`
	TerminalCode string `json:"terminalCode"`
	PortSequence int    `json:"portSeq"`

	Arrival   *hmmArrival   `json:"arrival"`
	Departure *hmmDeparture `json:"departure"`
}

type hmmArrival struct {
	ArrivalDate string `json:"arrivalDate"`
	ArrivalTime string `json:"arrivalTime"`
	Status      string `json:"status"`
}

type hmmDeparture struct {
	DepartureDate string `json:"departureDate"`
	DepartureTime string `json:"departureTime"`
	Status        string `json:"status"`
}

type hmmTrackingResponse struct {
	ResultCode    string            `json:"resultCode"`
	ResultMessage string            `json:"resultMessage"`
	ResultData    []hmmTrackingItem `json:"resultData"`
}

type hmmTrackingItem struct {
	EventDate string `json:"eventDate"`
	EventTime string `json:"eventTime"`
	IssueDate string `json:"issueDate"`
	IssueTime string `json:"issueTime"`

	StatusCode string `json:"statusCode"`
	EventName  string `json:"eventName"`

	DocumentNumber string `json:"documentNo"`
	DocumentType   string `json:"documentType"`

	ContainerNumber string `json:"containerNo"`
	FullEmpty       string `json:"fullEmpty"`
	SealNumber      string `json:"sealNo"`

	VVDCode    string `json:"vvdCode"`
	VesselName string `json:"vesselName"`
	PortCode   string `json:"portCode"`
	PortName   string `json:"portName"`
}
