// Package sort 정수 슬라이스용 제자리 퀵소트와 그 fork-join 병렬 버전.
//
// 분할은 중앙 인덱스 값을 피벗으로 쓰는 호어 방식이고, 병렬 버전은 분할로 생긴
// 두 구간이 모두 두 개 이상의 원소를 가질 때만 왼쪽을 포크하고 오른쪽은 현재
// 고루틴에서 이어서 정렬한 뒤 조인한다. 두 구간은 같은 배열의 겹치지 않는 서브슬라이스라서
// 복사나 잠금이 필요 없다.
//
//	data := []int64{5, 3, 8, 3, 9, 1}
//	sort.Parallel(data, 4) // [1 3 3 5 8 9]
//
// 피벗이 항상 중앙값이라 특정 패턴 입력에서는 O(n²)까지 느려질 수 있다.
// 안정 정렬이 아니며 정렬 중 슬라이스 길이를 바꾸면 안 된다.
package sort
