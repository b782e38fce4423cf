package reconcile_proposals

// Tipos de reparo reportados nas métricas
const (
	RepairCreated   = "created"
	RepairRemoved   = "removed"
	RepairCorrected = "corrected"
	RepairOrphan    = "orphan"
)

// Report resultado da varredura para uma proposta
type Report struct {
	ProposalID   int64  `json:"proposalId"`
	ProposalCode string `json:"proposalCode"`

	// HadProblem indica que alguma divergência foi encontrada
	HadProblem bool `json:"hadProblem"`

	// Created reservas recriadas para outdoors do pacote sem reserva
	Created int64 `json:"created"`

	// Removed reservas apagadas de outdoors fora do pacote (ou duplicadas)
	Removed int64 `json:"removed"`

	// Corrected reservas com período ou dono realinhados à proposta
	Corrected int64 `json:"corrected"`

	// Inconsistent o pacote referencia outdoor que não existe mais;
	// nada é recriado para ele, fica a cargo de intervenção manual
	Inconsistent bool `json:"inconsistent"`
}

// Result resultado agregado de uma execução da varredura
type Result struct {
	// Reports um por proposta com divergência; propostas sãs não entram
	Reports []*Report `json:"reports"`

	// ProposalsChecked total de propostas varridas
	ProposalsChecked int64 `json:"proposalsChecked"`

	// Expired propostas em andamento movidas para vencida nesta execução
	Expired int64 `json:"expired"`

	// OrphanBookingsRemoved reservas cuja proposta não existe mais
	OrphanBookingsRemoved int64 `json:"orphanBookingsRemoved"`
}
